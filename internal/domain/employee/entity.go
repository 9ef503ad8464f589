package employee

import "time"

type EmploymentType string

const (
	EmploymentTypeFullTime EmploymentType = "full_time"
	EmploymentTypePartTime EmploymentType = "part_time"
	EmploymentTypeContract EmploymentType = "contract"
	EmploymentTypeIntern   EmploymentType = "intern"
)

func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentTypeFullTime, EmploymentTypePartTime, EmploymentTypeContract, EmploymentTypeIntern:
		return true
	}
	return false
}

type Employee struct {
	ID                string
	UserID            *string
	EmployeeCode      string
	FirstName         string
	LastName          string
	Email             string
	Phone             *string
	DateOfBirth       *time.Time
	JoiningDate       time.Time
	ResignationDate   *time.Time
	DepartmentID      *string
	DesignationID     *string
	ManagerID         *string
	EmploymentType    EmploymentType
	PANNumber         *string
	BankAccountNumber *string
	BankIFSC          *string
	BankName          *string
	Address           *string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	DepartmentName   *string
	DesignationTitle *string
	ManagerFirstName *string
	ManagerLastName  *string
}
