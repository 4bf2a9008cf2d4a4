package employee

// Employee is one directory record as returned by the ERP employee listing.
// Records are read-only snapshots; the id is unique within one fetch result.
type Employee struct {
	ID            string `json:"employee"`
	Name          string `json:"employee_name"`
	Gender        string `json:"gender"`
	DateOfBirth   string `json:"date_of_birth"`
	DateOfJoining string `json:"date_of_joining"`
	Status        string `json:"status"`
	Company       string `json:"company"`
	Department    string `json:"department"`
	Designation   string `json:"designation"`
	Branch        string `json:"branch"`
	CellNumber    string `json:"cell_number"`
	PersonalEmail string `json:"personal_email"`
	CompanyEmail  string `json:"company_email"`
	DefaultShift  string `json:"default_shift"`
	ReportsTo     string `json:"reports_to"`
	NationalID    string `json:"custom_national_id"`
	KRAPin        string `json:"custom_kra_pin"`
	NHIFNumber    string `json:"custom_nhif_sha"`
	NSSFNumber    string `json:"custom_nssf_no"`
	Image         string `json:"image,omitempty"`
}

// Field implements grid.Record over the searchable and filterable fields.
func (e Employee) Field(name string) (string, bool) {
	switch name {
	case "employee":
		return e.ID, true
	case "employee_name":
		return e.Name, true
	case "gender":
		return e.Gender, true
	case "date_of_birth":
		return e.DateOfBirth, true
	case "date_of_joining":
		return e.DateOfJoining, true
	case "status":
		return e.Status, true
	case "company":
		return e.Company, true
	case "department":
		return e.Department, true
	case "designation":
		return e.Designation, true
	case "branch":
		return e.Branch, true
	case "cell_number":
		return e.CellNumber, true
	case "personal_email":
		return e.PersonalEmail, true
	case "company_email":
		return e.CompanyEmail, true
	case "default_shift":
		return e.DefaultShift, true
	case "reports_to":
		return e.ReportsTo, true
	default:
		return "", false
	}
}

// SearchFields are the free-text search targets for the directory view.
var SearchFields = []string{"employee_name", "employee", "department", "designation"}

// BucketFields are the categorical fields the directory filters on.
var BucketFields = []string{"department", "status", "company"}
