package models

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SkillSeparator joins tags in SkillsText. Tags never contain it.
const SkillSeparator = "\n"

// JobPosting is an employer-authored vacancy. Deletion only clears IsActive.
type JobPosting struct {
	BaseModel
	Title            string         `gorm:"size:200;not null"`
	Description      string         `gorm:"type:text;not null"`
	Requirements     datatypes.JSON `gorm:"type:jsonb"`
	Responsibilities datatypes.JSON `gorm:"type:jsonb"`
	Skills           datatypes.JSON `gorm:"type:jsonb"`
	// SkillsText mirrors Skills one tag per line for text search.
	SkillsText       string         `gorm:"type:text;not null;default:''"`

	SalaryMin      *float64
	SalaryMax      *float64
	SalaryCurrency string       `gorm:"size:3"`
	SalaryPeriod   SalaryPeriod `gorm:"type:varchar(20)"`

	JobType         JobType         `gorm:"type:varchar(20);not null;index"`
	ExperienceLevel ExperienceLevel `gorm:"type:varchar(20);not null;index"`
	Location        string          `gorm:"size:200"`
	IsRemote        bool            `gorm:"not null"`

	CompanyID *string  `gorm:"type:uuid;index"`
	Company   *Company `gorm:"foreignKey:CompanyID"`
	PostedBy  string   `gorm:"type:uuid;not null;index"`
	Poster    *User    `gorm:"foreignKey:PostedBy"`

	// Bool columns carry no gorm default so that false survives Create.
	IsActive       bool  `gorm:"not null;index"`
	IsApproved     bool  `gorm:"not null;index"`
	ViewCount      int64 `gorm:"not null;default:0"`
	ApplicantCount int64 `gorm:"not null;default:0"`
}

// BeforeSave keeps SkillsText in step with Skills.
func (j *JobPosting) BeforeSave(tx *gorm.DB) error {
	j.SkillsText = strings.Join(SkillTags(j.Skills), SkillSeparator)
	return nil
}

// SkillTags decodes a skills column into searchable tags. Separator
// characters inside a tag are replaced by spaces.
func SkillTags(raw datatypes.JSON) []string {
	tags := DecodeStringList(raw)
	for i, tag := range tags {
		tags[i] = strings.ReplaceAll(tag, SkillSeparator, " ")
	}
	return tags
}

// StringList encodes values for a JSON list column. A nil slice is stored as [].
func StringList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

// DecodeStringList is the inverse of StringList. Malformed or empty
// column contents decode to an empty list.
func DecodeStringList(raw datatypes.JSON) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	return out
}
