package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/exam-portal/internal/container"
	"github.com/saulo-duarte/exam-portal/internal/router"
)

var adapter *httpadapter.HandlerAdapterV2

func init() {
	c := container.New()
	adapter = httpadapter.NewV2(router.New(c.RouterConfig()))
}

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
