package user

type Role string

const (
	RoleStudent Role = "Student"
	RoleTeacher Role = "Teacher"
	RoleAdmin   Role = "Admin"
)

var AllRoles = []Role{
	RoleStudent,
	RoleTeacher,
	RoleAdmin,
}

func (r Role) IsValid() bool {
	for _, v := range AllRoles {
		if r == v {
			return true
		}
	}
	return false
}

// CanAuthor reports whether the role may write exams and request drafts.
func (r Role) CanAuthor() bool {
	return r == RoleTeacher || r == RoleAdmin
}
