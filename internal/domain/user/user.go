package user

// User is an account holder. Email is the primary key; accounts are never
// updated or deleted after sign-up.
type User struct {
	Email        string
	Name         string
	PasswordHash string
}

// FallbackName is returned wherever a display name cannot be resolved.
const FallbackName = "Student"

// SignupPolicy validates sign-up input before an account is created.
// The default accepts everything, empty strings included; stricter rules
// are opt-in per deployment.
type SignupPolicy func(email, name, password string) error

func DefaultSignupPolicy(email, name, password string) error {
	return nil
}

func New(email, name, passwordHash string) *User {
	return &User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
	}
}
