package domain

// Category groups jobs. The slug is derived from the name once at creation
// and never regenerated on rename.
type Category struct {
	ID   CategoryID `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	Name string     `gorm:"size:100;uniqueIndex:ux_categories_name;not null" db:"name" json:"name"`
	Slug string     `gorm:"size:100;uniqueIndex:ux_categories_slug;not null" db:"slug" json:"slug"`
}

func (Category) TableName() string { return "categories" }

type Tag struct {
	ID   TagID  `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	Name string `gorm:"size:50;uniqueIndex:ux_tags_name;not null" db:"name" json:"name"`
}

func (Tag) TableName() string { return "tags" }

// CompanyProfile is the catalog-side company record, distinct from
// EmployerProfile. Both exist on purpose; call sites assume both.
type CompanyProfile struct {
	ID          CompanyProfileID `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	UserID      UserID           `gorm:"type:uuid;uniqueIndex:ux_company_profiles_user;not null" db:"user_id" json:"userId"`
	User        *User            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CompanyName string           `gorm:"size:255;not null" db:"company_name" json:"companyName"`
	Website     string           `gorm:"size:255" db:"website" json:"website"`
	Logo        string           `gorm:"size:512" db:"logo" json:"logo"`
	Location    string           `gorm:"size:255;not null" db:"location" json:"location"`
	Description string           `gorm:"type:text" db:"description" json:"description"`
}

func (CompanyProfile) TableName() string { return "company_profiles" }
