package domain

// StatusCategory splits status labels into the active pipeline and closed
// outcomes.
type StatusCategory string

const (
	StatusCategoryActive   StatusCategory = "active"
	StatusCategoryInactive StatusCategory = "inactive"
)

func (c StatusCategory) String() string { return string(c) }

func (c StatusCategory) IsValid() bool {
	switch c {
	case StatusCategoryActive, StatusCategoryInactive:
		return true
	}
	return false
}

// Well-known status labels. Analytics key off these; the pipeline config may
// define additional labels.
const (
	LabelApplied      = "applied"
	LabelScreening    = "screening"
	LabelInterviewing = "interviewing"
	LabelOffer        = "offer"

	LabelRejected   = "rejected"
	LabelWithdrawn  = "withdrawn"
	LabelNoResponse = "no response"
	LabelGhosted    = "ghosted"
)

// SourceType is the channel through which an application was discovered.
type SourceType string

const (
	SourceJobBoard       SourceType = "job-board"
	SourceReferral       SourceType = "referral"
	SourceRecruiter      SourceType = "recruiter"
	SourceCompanyWebsite SourceType = "company-website"
	SourceNetworking     SourceType = "networking"
	SourceOther          SourceType = "other"
)

func (s SourceType) String() string { return string(s) }

func (s SourceType) IsValid() bool {
	switch s {
	case SourceJobBoard, SourceReferral, SourceRecruiter,
		SourceCompanyWebsite, SourceNetworking, SourceOther:
		return true
	}
	return false
}

// ContactChannel is how a contact was reached.
type ContactChannel string

const (
	ChannelEmail    ContactChannel = "email"
	ChannelLinkedIn ContactChannel = "linkedin"
	ChannelPhone    ContactChannel = "phone"
	ChannelInPerson ContactChannel = "in-person"
	ChannelReferral ContactChannel = "referral"
	ChannelOther    ContactChannel = "other"
)

func (c ContactChannel) String() string { return string(c) }

func (c ContactChannel) IsValid() bool {
	switch c {
	case ChannelEmail, ChannelLinkedIn, ChannelPhone, ChannelInPerson, ChannelReferral, ChannelOther:
		return true
	}
	return false
}

// InterviewType classifies an interview stage.
type InterviewType string

const (
	InterviewPhoneScreen   InterviewType = "phone-screen"
	InterviewTechnical     InterviewType = "technical"
	InterviewBehavioral    InterviewType = "behavioral"
	InterviewSystemDesign  InterviewType = "system-design"
	InterviewTakeHome      InterviewType = "take-home"
	InterviewOnsite        InterviewType = "onsite"
	InterviewPanel         InterviewType = "panel"
	InterviewHiringManager InterviewType = "hiring-manager"
	InterviewOther         InterviewType = "other"
)

func (t InterviewType) String() string { return string(t) }

func (t InterviewType) IsValid() bool {
	switch t {
	case InterviewPhoneScreen, InterviewTechnical, InterviewBehavioral, InterviewSystemDesign,
		InterviewTakeHome, InterviewOnsite, InterviewPanel, InterviewHiringManager, InterviewOther:
		return true
	}
	return false
}
