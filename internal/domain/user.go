package domain

import "time"

// User is an authenticated account. Email is normalized to lowercase before
// it reaches the store, so the unique index doubles as the case-insensitive
// uniqueness guarantee.
type User struct {
	ID        UserID `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	Email     string `gorm:"uniqueIndex:ux_users_email;not null" db:"email" json:"email"`
	Username  string `gorm:"size:150" db:"username" json:"username"`
	FirstName string `gorm:"size:150" db:"first_name" json:"firstName"`
	LastName  string `gorm:"size:150" db:"last_name" json:"lastName"`
	Role      Role   `gorm:"size:20;not null" db:"role" json:"role"`
	IsActive  bool   `gorm:"not null;default:true" db:"is_active" json:"isActive"`
	IsStaff   bool   `gorm:"not null;default:false" db:"is_staff" json:"isStaff"`

	PasswordAlgo   string `gorm:"size:32" db:"password_algo" json:"-"`
	PasswordHash   []byte `db:"password_hash" json:"-"`
	PasswordSalt   []byte `db:"password_salt" json:"-"`
	PasswordParams []byte `db:"password_params" json:"-"`

	CreatedAt time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" db:"updated_at" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// EmployerProfile is auto-created when an employer account is created.
type EmployerProfile struct {
	ID                 UserID    `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	UserID             UserID    `gorm:"type:uuid;uniqueIndex:ux_employer_profiles_user;not null" db:"user_id" json:"userId"`
	User               *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CompanyName        string    `gorm:"size:255" db:"company_name" json:"companyName"`
	CompanyWebsite     string    `gorm:"size:255" db:"company_website" json:"companyWebsite"`
	CompanyDescription string    `gorm:"type:text" db:"company_description" json:"companyDescription"`
	CreatedAt          time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
}

func (EmployerProfile) TableName() string { return "employer_profiles" }

// ApplicantProfile is auto-created when an applicant account is created.
// Resume holds an opaque stored-file handle under the resumes/ prefix.
type ApplicantProfile struct {
	ID        UserID    `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	UserID    UserID    `gorm:"type:uuid;uniqueIndex:ux_applicant_profiles_user;not null" db:"user_id" json:"userId"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Resume    string    `gorm:"size:512" db:"resume" json:"resume"`
	Bio       string    `gorm:"type:text" db:"bio" json:"bio"`
	CreatedAt time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
}

func (ApplicantProfile) TableName() string { return "applicant_profiles" }
