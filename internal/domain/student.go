package domain

import (
	"fmt"
	"strings"
	"time"
)

// CompletionStatus is a student's progress state within an event.
type CompletionStatus string

const (
	CompletionEnrolled   CompletionStatus = "enrolled"
	CompletionInProgress CompletionStatus = "in-progress"
	CompletionCompleted  CompletionStatus = "completed"
	CompletionWithdrawn  CompletionStatus = "withdrawn"
)

// License is a student's professional license.
type License struct {
	Type           string    `json:"type"`
	Number         string    `json:"number"`
	State          string    `json:"state"`
	ExpirationDate time.Time `json:"expirationDate"`
}

// Certification is a credential held by a student.
type Certification struct {
	Type           string    `json:"type"`
	Number         string    `json:"number"`
	IssuedBy       string    `json:"issuedBy"`
	IssueDate      time.Time `json:"issueDate"`
	ExpirationDate time.Time `json:"expirationDate"`
}

// Clinic is the practice a student works at.
type Clinic struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// CourseProgress is a student's progress record in the learning platform.
type CourseProgress struct {
	CourseID           string    `json:"courseId"`
	CourseName         string    `json:"courseName"`
	ProgressPercentage int       `json:"progressPercentage"`
	CompletedLessons   int       `json:"completedLessons"`
	TotalLessons       int       `json:"totalLessons"`
	LastAccessDate     time.Time `json:"lastAccessDate"`
	CertificateEarned  bool      `json:"certificateEarned"`
}

// Student represents an event participant. Certification and instrument
// ordering carries no meaning; consumers must not depend on it.
// swagger:model Student
type Student struct {
	ID               string           `json:"id"`
	FirstName        string           `json:"firstName"`
	LastName         string           `json:"lastName"`
	Email            string           `json:"email"`
	MaskedEmail      string           `json:"maskedEmail"`
	License          License          `json:"license"`
	Certifications   []Certification  `json:"certifications"`
	Occupation       string           `json:"occupation"`
	Instruments      []string         `json:"instruments"`
	Clinic           Clinic           `json:"clinic"`
	Progress         CourseProgress   `json:"learnDashProgress"`
	EnrollmentDate   time.Time        `json:"enrollmentDate"`
	CompletionStatus CompletionStatus `json:"completionStatus"`
}

// MaskEmail partially redacts an email address for display and export.
// It must only ever be applied to the raw source email; the output is not a
// valid input (re-masking would stack the redaction markers).
func MaskEmail(email string) string {
	local, domainPart, found := strings.Cut(email, "@")
	if !found {
		return email
	}
	if len(local) <= 2 {
		return local + "***@" + domainPart
	}
	return local[:2] + "***@" + domainPart
}

// Validate checks structural requirements.
func (s *Student) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: student missing id", ErrMalformedRecord)
	}
	if s.Email == "" {
		return fmt.Errorf("%w: student %s missing email", ErrMalformedRecord, s.ID)
	}
	return nil
}

// DeriveMaskedEmail recomputes the masked email from the raw source email.
func (s *Student) DeriveMaskedEmail() {
	s.MaskedEmail = MaskEmail(s.Email)
}
