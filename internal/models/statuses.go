package models

type UserRole string
type JobType string
type ExperienceLevel string
type SalaryPeriod string

const (
	UserRoleJobSeeker UserRole = "job_seeker"
	UserRoleEmployer  UserRole = "employer"
	UserRoleAdmin     UserRole = "admin"

	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeFreelance  JobType = "freelance"

	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceLead      ExperienceLevel = "lead"
	ExperienceExecutive ExperienceLevel = "executive"

	SalaryPeriodHourly  SalaryPeriod = "hourly"
	SalaryPeriodMonthly SalaryPeriod = "monthly"
	SalaryPeriodYearly  SalaryPeriod = "yearly"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleJobSeeker, UserRoleEmployer, UserRoleAdmin:
		return true
	}
	return false
}

// CanPostJobs reports whether the role may create postings and companies.
func (r UserRole) CanPostJobs() bool {
	return r == UserRoleEmployer || r == UserRoleAdmin
}

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeFreelance:
		return true
	}
	return false
}

func (l ExperienceLevel) Valid() bool {
	switch l {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceLead, ExperienceExecutive:
		return true
	}
	return false
}

func (p SalaryPeriod) Valid() bool {
	switch p {
	case SalaryPeriodHourly, SalaryPeriodMonthly, SalaryPeriodYearly:
		return true
	}
	return false
}
