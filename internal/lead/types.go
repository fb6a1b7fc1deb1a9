package lead

// ContactInput carries the fields accepted when creating or upserting
// a CRM contact.
type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Tags      []string
}

// ContactOutput is the outcome of a contact write. Data is the raw CRM
// payload; ContactID is extracted from it when present.
type ContactOutput struct {
	ContactID string
	Data      map[string]any
}

// ContactQuery filters a contact search.
type ContactQuery struct {
	Query  string
	Limit  int
	Offset int
}

// OpportunityInput carries the fields accepted when creating an
// opportunity. PipelineID and StageID are optional; when absent the
// configured or first available pipeline is used.
type OpportunityInput struct {
	Name          string
	ContactID     string
	PipelineID    string
	StageID       string
	MonetaryValue float64
}

// OpportunityOutput is the outcome of an opportunity write.
type OpportunityOutput struct {
	OpportunityID string
	Data          map[string]any
}

// OpportunityQuery filters an opportunity search.
type OpportunityQuery struct {
	PipelineID string
	StageID    string
	ContactID  string
	Query      string
	Limit      int
	Offset     int
}

// SearchOutput wraps a raw CRM search payload.
type SearchOutput struct {
	Data map[string]any
}

// ConsultationInput is a request for an in-store consultation.
type ConsultationInput struct {
	CustomerName     string
	Email            string
	Phone            string
	PreferredDate    string
	ConsultationType string
	Message          string
}

// ConsultationOutput acknowledges a consultation request. ContactID is
// set only when the CRM leg of the workflow succeeded.
type ConsultationOutput struct {
	AppointmentID string
	Customer      string
	Email         string
	Phone         string
	Date          string
	Type          string
	Status        string
	Message       string
	ContactID     string
}
