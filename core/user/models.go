package user

import (
	"context"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/elimuhq/elimu/core"
)

// Role is the closed set of roles known to the system.
// The canonical spelling uses hyphens; ParseRole accepts underscore variants
// seen in older data dumps and normalizes them.
type Role string

const (
	RoleSuperAdmin  Role = "super-admin"
	RoleAdmin       Role = "admin"
	RolePrincipal   Role = "principal"
	RoleInstitution Role = "institution"
	RoleHOD         Role = "hod"
	RoleFaculty     Role = "faculty"
	RoleStaff       Role = "staff"
	RoleStudent     Role = "student"
	RoleParent      Role = "parent"
)

var AllRoles = []Role{
	RoleSuperAdmin,
	RoleAdmin,
	RolePrincipal,
	RoleInstitution,
	RoleHOD,
	RoleFaculty,
	RoleStaff,
	RoleStudent,
	RoleParent,
}

var rolePriorities = map[Role]int{
	RoleSuperAdmin:  90,
	RoleAdmin:       80,
	RolePrincipal:   70,
	RoleInstitution: 60,
	RoleHOD:         50,
	RoleFaculty:     40,
	RoleStaff:       30,
	RoleStudent:     20,
	RoleParent:      10,
}

func (r Role) Valid() bool {
	_, ok := rolePriorities[r]
	return ok
}

func (r Role) Priority() int {
	return rolePriorities[r]
}

// ParseRole normalizes a raw role string to its canonical Role.
// Unknown values map to the empty Role, which fails every access check.
func ParseRole(s string) Role {
	r := Role(strings.ReplaceAll(core.CleanString(s, true /* lower */), "_", "-"))
	if !r.Valid() {
		return ""
	}
	return r
}

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`

	// single-institution scoping; empty for super-admin
	Institution     string `json:"institution,omitempty"`
	InstitutionID   string `json:"institution_id,omitempty"`
	InstitutionCode string `json:"institution_code,omitempty"`

	Department string `json:"department,omitempty"`
	StudentID  string `json:"student_id,omitempty"` // set only when Role == student

	IsActive     bool      `json:"is_active"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"` // UTC
	UpdatedAt    time.Time `json:"updated_at"` // UTC
	LastLogin    time.Time `json:"last_login"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u *User) IsSuperAdmin() bool { return u.Role == RoleSuperAdmin }
func (u *User) IsAdmin() bool      { return u.Role == RoleSuperAdmin || u.Role == RoleAdmin }
func (u *User) IsStudent() bool    { return u.Role == RoleStudent }

// NewUser contains information needed to create a new User.
type NewUser struct {
	Name            string `json:"name" validate:"required"`
	Username        string `json:"username" validate:"omitempty,min=6,alphanum_"`
	Email           string `json:"email" validate:"required,email"`
	Role            string `json:"role" validate:"required,role"`
	Institution     string `json:"institution"`
	InstitutionID   string `json:"institution_id"`
	InstitutionCode string `json:"institution_code"`
	Department      string `json:"department"`
	StudentID       string `json:"student_id"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

func (nu *NewUser) Validate(ctx context.Context, validate *validator.Validate, svc Service) error {
	nu.Name = core.CleanString(nu.Name)
	nu.Username = core.CleanString(nu.Username, true /* lower */)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	if r := ParseRole(nu.Role); r != "" {
		nu.Role = string(r)
	}

	if err := validate.Struct(nu); err != nil {
		return err
	}
	return svc.CheckUniqueness(ctx, nu.Username, nu.Email)
}

// UpdateUser defines what information may be provided to modify an existing User.
type UpdateUser struct {
	Name            string `json:"name"`
	Username        string `json:"username" validate:"omitempty,min=6,alphanum_"`
	Email           string `json:"email" validate:"omitempty,email"`
	Role            string `json:"role" validate:"omitempty,role"`
	Department      string `json:"department"`
	IsActive        *bool  `json:"is_active"`
	Password        string `json:"password" validate:"omitempty"`
	PasswordConfirm string `json:"password_confirm" validate:"required_with=Password,eqfield=Password"`
}

func (uu *UpdateUser) Validate(ctx context.Context, validate *validator.Validate, origUsr User, svc Service) error {
	name := core.CleanString(uu.Name)
	if name != "" {
		uu.Name = name
	} else {
		uu.Name = origUsr.Name
	}

	uname := core.CleanString(uu.Username, true /* lower */)
	if uname != "" {
		uu.Username = uname
	} else {
		uu.Username = origUsr.Username
	}

	email := core.CleanString(uu.Email, true /* lower */)
	if email != "" {
		uu.Email = email
	} else {
		uu.Email = origUsr.Email
	}

	if r := ParseRole(uu.Role); r != "" {
		uu.Role = string(r)
	} // unknown non-empty values stay raw so the "role" tag rejects them

	if err := validate.Struct(uu); err != nil {
		return err
	}
	return svc.CheckUniqueness(ctx, uu.Username, uu.Email, origUsr)
}

type ResetUserPassword struct {
	Token           string `json:"token,omitempty" validate:"required"`
	UID             string `json:"uid,omitempty" validate:"required"`
	Password        string `json:"password,omitempty" validate:"required"`
	PasswordConfirm string `json:"password_confirm,omitempty" validate:"required,eqfield=Password"`
}

func (rp ResetUserPassword) Validate(validate *validator.Validate) error {
	return validate.Struct(rp)
}

// RegisterValidators adds the user package's custom validation tags.
func RegisterValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return Role(fl.Field().String()).Valid()
	})
	core.RegisterCustomTranslation(validate, translator, "role", "unknown role")
}
