package entity

type Role string

const (
	RoleUser     Role = "user"
	RoleProvider Role = "provider"
)

type User struct {
	Base
	Name         string `bson:"name"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`
	Phone        string `bson:"phone"`
	Role         Role   `bson:"role"`
}
