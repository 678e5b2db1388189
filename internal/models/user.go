package models

// User mirrors an identity issued by the external identity provider.
// Rows are joined for display as the poster of a job posting.
type User struct {
	BaseModel
	Email     string   `gorm:"size:255;uniqueIndex;not null"`
	FirstName string   `gorm:"size:100"`
	LastName  string   `gorm:"size:100"`
	Role      UserRole `gorm:"type:varchar(20);not null"`
}

func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
