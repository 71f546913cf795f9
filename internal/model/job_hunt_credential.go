package model

// Job application statuses.
const (
	StatusPending  = "PENDING"
	StatusOffered  = "OFFERED"
	StatusRejected = "REJECTED"
)

// JobHuntCredential is a credential created for a job application, stored in its
// own collection as a flat document: the Credential fields are inlined next to the
// application tracking fields.
type JobHuntCredential struct {
	Credential `bson:",inline"`

	PostName        string            `json:"post_name" bson:"post_name"`
	ContactPerson   map[string]string `json:"contact_person" bson:"contact_person"`
	ExpectedSalary  SalaryRange       `json:"expected_salary" bson:"expected_salary"`
	ReferenceNumber string            `json:"reference_number" bson:"reference_number"`
	ApplyDate       string            `json:"apply_date" bson:"apply_date"`
	Status          string            `json:"status" bson:"status"`
	Medium          string            `json:"medium" bson:"medium"`
	// FollowUps maps a date to the action taken on it.
	FollowUps map[string]string `json:"follow_ups" bson:"follow_ups"`
	// FollowUpFiles maps a date to the file holding notes for that follow-up.
	FollowUpFiles      map[string]string `json:"follow_up_files" bson:"follow_up_files"`
	JobDescription     string            `json:"job_description" bson:"job_description"`
	ApplicationDetails []string          `json:"application_details" bson:"application_details"`
}

// SalaryRange is an inclusive [min, max] bound.
type SalaryRange [2]int

// Valid reports whether the bound is ordered and non-negative.
func (r SalaryRange) Valid() bool {
	return r[0] >= 0 && r[0] <= r[1]
}

// JobHuntCredentialCreate is the create request body. The credential keys are
// required as for Credential; expected_salary may be omitted.
type JobHuntCredentialCreate struct {
	CredentialCreate

	PostName           *string            `json:"post_name" validate:"required"`
	ContactPerson      *map[string]string `json:"contact_person" validate:"required"`
	ExpectedSalary     *SalaryRange       `json:"expected_salary" validate:"omitempty,salary_range"`
	ReferenceNumber    *string            `json:"reference_number"`
	ApplyDate          *string            `json:"apply_date" validate:"required,datetime=2006-01-02"`
	Status             *string            `json:"status" validate:"required,oneof=PENDING OFFERED REJECTED"`
	Medium             *string            `json:"medium"`
	FollowUps          *map[string]string `json:"follow_ups"`
	FollowUpFiles      *map[string]string `json:"follow_up_files"`
	JobDescription     *string            `json:"job_description"`
	ApplicationDetails []string           `json:"application_details"`
}

func (d JobHuntCredentialCreate) Record() *JobHuntCredential {
	rec := &JobHuntCredential{
		Credential:         *d.CredentialCreate.Record(),
		PostName:           value(d.PostName),
		ContactPerson:      mapValue(d.ContactPerson),
		ReferenceNumber:    value(d.ReferenceNumber),
		ApplyDate:          value(d.ApplyDate),
		Status:             value(d.Status),
		Medium:             value(d.Medium),
		FollowUps:          mapValue(d.FollowUps),
		FollowUpFiles:      mapValue(d.FollowUpFiles),
		JobDescription:     value(d.JobDescription),
		ApplicationDetails: d.ApplicationDetails,
	}
	if d.ExpectedSalary != nil {
		rec.ExpectedSalary = *d.ExpectedSalary
	}
	if rec.ApplicationDetails == nil {
		rec.ApplicationDetails = []string{}
	}
	return rec
}

// JobHuntCredentialUpdate is the partial form of JobHuntCredential.
type JobHuntCredentialUpdate struct {
	CredentialUpdate

	PostName           *string            `json:"post_name"`
	ContactPerson      *map[string]string `json:"contact_person"`
	ExpectedSalary     *SalaryRange       `json:"expected_salary" validate:"omitempty,salary_range"`
	ReferenceNumber    *string            `json:"reference_number"`
	ApplyDate          *string            `json:"apply_date" validate:"omitempty,datetime=2006-01-02"`
	Status             *string            `json:"status" validate:"omitempty,oneof=PENDING OFFERED REJECTED"`
	Medium             *string            `json:"medium"`
	FollowUps          *map[string]string `json:"follow_ups"`
	FollowUpFiles      *map[string]string `json:"follow_up_files"`
	JobDescription     *string            `json:"job_description"`
	ApplicationDetails *[]string          `json:"application_details"`
}

func (u JobHuntCredentialUpdate) Fields() map[string]any {
	m := u.CredentialUpdate.Fields()
	setString(m, "post_name", u.PostName)
	setMap(m, "contact_person", u.ContactPerson)
	if u.ExpectedSalary != nil {
		m["expected_salary"] = *u.ExpectedSalary
	}
	setString(m, "reference_number", u.ReferenceNumber)
	setString(m, "apply_date", u.ApplyDate)
	setString(m, "status", u.Status)
	setString(m, "medium", u.Medium)
	setMap(m, "follow_ups", u.FollowUps)
	setMap(m, "follow_up_files", u.FollowUpFiles)
	setString(m, "job_description", u.JobDescription)
	if u.ApplicationDetails != nil {
		files := *u.ApplicationDetails
		if files == nil {
			files = []string{}
		}
		m["application_details"] = files
	}
	return m
}
