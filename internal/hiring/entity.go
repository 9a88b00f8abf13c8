package hiring

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names one of the five entity types. The zero value means "any kind"
// when used as a filter.
type Kind string

const (
	KindCompany       Kind = "company"
	KindJobPosting    Kind = "job_posting"
	KindPromise       Kind = "promise"
	KindVouch         Kind = "vouch"
	KindPersonalVouch Kind = "personal_vouch"
)

// Kinds lists every entity kind in display order.
func Kinds() []Kind {
	return []Kind{KindCompany, KindJobPosting, KindPromise, KindVouch, KindPersonalVouch}
}

// ParseKind accepts a kind name; the empty string and "all" mean any kind.
func ParseKind(s string) (Kind, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" || trimmed == "all" {
		return "", nil
	}
	for _, k := range Kinds() {
		if string(k) == trimmed {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown entity type %q", s)
}

// ErrNotObject is returned when the document root or its data field is not a
// mapping.
var ErrNotObject = errors.New("document is not an object")

// Entity is one of Company, JobPosting, Promise, Vouch or PersonalVouch.
type Entity interface {
	Kind() Kind
	// Raw returns the value the entity was decoded from.
	Raw() Value
	isEntity()
}

// Company is a hiring organisation with its nested job postings.
type Company struct {
	ID          string
	Name        string
	Domain      string
	Industry    string
	Location    string
	Description string
	JobPostings []JobPosting

	raw Value
}

// JobPosting is an advertised role with its promises and personal vouches.
type JobPosting struct {
	ID              string
	Title           string
	Location        string
	EmploymentType  string
	SalaryMin       Value
	SalaryCurrency  string
	PostedDate      string
	Description     string
	Promises        []Promise
	PersonalVouches []PersonalVouch

	raw Value
}

// Promise is a commitment attached to a job posting.
type Promise struct {
	ID           string
	Text         string
	Type         string
	TimelineDays Value
	ValueMin     Value
	Description  string

	raw Value
}

// Vouch is an endorsement of a claim about a company.
type Vouch struct {
	ID              string
	Statement       string
	ClaimType       string
	SourceSeniority string
	Weight          Value
	ValidFrom       string
	Description     string

	raw Value
}

// PersonalVouch is a Vouch given by someone with a named relationship.
type PersonalVouch struct {
	Vouch
	Relationship string
}

func (Company) Kind() Kind       { return KindCompany }
func (JobPosting) Kind() Kind    { return KindJobPosting }
func (Promise) Kind() Kind       { return KindPromise }
func (Vouch) Kind() Kind         { return KindVouch }
func (PersonalVouch) Kind() Kind { return KindPersonalVouch }

func (c Company) Raw() Value    { return c.raw }
func (j JobPosting) Raw() Value { return j.raw }
func (p Promise) Raw() Value    { return p.raw }
func (v Vouch) Raw() Value      { return v.raw }

func (Company) isEntity()    {}
func (JobPosting) isEntity() {}
func (Promise) isEntity()    {}
func (Vouch) isEntity()      {}

// Document is the decoded hiring document.
type Document struct {
	Companies       []Company
	JobPostings     []JobPosting
	Promises        []Promise
	Vouches         []Vouch
	PersonalVouches []PersonalVouch
}

// Len returns the number of entities reachable from the document, nested
// ones included.
func (d Document) Len() int {
	n := len(d.JobPostings) + len(d.Promises) + len(d.Vouches) + len(d.PersonalVouches)
	for _, c := range d.Companies {
		n++
		for _, j := range c.JobPostings {
			n += 1 + len(j.Promises) + len(j.PersonalVouches)
		}
	}
	return n
}

// DecodeDocument builds a Document from a decoded root value of the form
// {"data": {"company": ..., "job_posting": ..., ...}}. A missing data field
// yields an empty document.
func DecodeDocument(root Value) (Document, error) {
	if root.Kind() != ValueMapping {
		return Document{}, ErrNotObject
	}
	data := root.Get("data")
	switch data.Kind() {
	case ValueEmpty:
		return Document{}, nil
	case ValueMapping:
	default:
		return Document{}, fmt.Errorf("data field: %w", ErrNotObject)
	}

	var doc Document
	for _, v := range data.Get("company").Elements() {
		doc.Companies = append(doc.Companies, decodeCompany(v))
	}
	for _, v := range data.Get("job_posting").Elements() {
		doc.JobPostings = append(doc.JobPostings, decodeJobPosting(v))
	}
	for _, v := range data.Get("promise").Elements() {
		doc.Promises = append(doc.Promises, decodePromise(v))
	}
	for _, v := range data.Get("vouch").Elements() {
		doc.Vouches = append(doc.Vouches, decodeVouch(v))
	}
	for _, v := range data.Get("personal_vouch").Elements() {
		doc.PersonalVouches = append(doc.PersonalVouches, decodePersonalVouch(v))
	}
	return doc, nil
}

func decodeCompany(v Value) Company {
	c := Company{
		ID:          v.Get("company_id").Text(),
		Name:        v.Get("company_name").Text(),
		Domain:      v.Get("domain").Text(),
		Industry:    v.Get("industry").Text(),
		Location:    v.Get("location").Text(),
		Description: v.Get("description").Text(),
		raw:         v,
	}
	for _, item := range v.Get("job_postings").Items() {
		c.JobPostings = append(c.JobPostings, decodeJobPosting(item))
	}
	return c
}

func decodeJobPosting(v Value) JobPosting {
	j := JobPosting{
		ID:             v.Get("job_posting_id").Text(),
		Title:          v.Get("job_title").Text(),
		Location:       v.Get("location").Text(),
		EmploymentType: v.Get("employment_type").Text(),
		SalaryMin:      v.Get("advertised_salary_min"),
		SalaryCurrency: v.Get("advertised_salary_currency").Text(),
		PostedDate:     v.Get("posted_date").Text(),
		Description:    v.Get("description").Text(),
		raw:            v,
	}
	for _, item := range v.Get("promises").Items() {
		j.Promises = append(j.Promises, decodePromise(item))
	}
	for _, item := range v.Get("personal_vouches").Items() {
		j.PersonalVouches = append(j.PersonalVouches, decodePersonalVouch(item))
	}
	return j
}

func decodePromise(v Value) Promise {
	return Promise{
		ID:           v.Get("promise_id").Text(),
		Text:         v.Get("promise_text").Text(),
		Type:         v.Get("promise_type").Text(),
		TimelineDays: v.Get("promised_timeline_days"),
		ValueMin:     v.Get("promised_value_min"),
		Description:  v.Get("description").Text(),
		raw:          v,
	}
}

func decodeVouch(v Value) Vouch {
	return Vouch{
		ID:              v.Get("vouch_id").Text(),
		Statement:       v.Get("vouch_statement").Text(),
		ClaimType:       v.Get("claim_type").Text(),
		SourceSeniority: v.Get("source_seniority").Text(),
		Weight:          v.Get("vouch_weight"),
		ValidFrom:       v.Get("valid_from").Text(),
		Description:     v.Get("description").Text(),
		raw:             v,
	}
}

func decodePersonalVouch(v Value) PersonalVouch {
	return PersonalVouch{
		Vouch:        decodeVouch(v),
		Relationship: v.Get("voucher_relationship").Text(),
	}
}
