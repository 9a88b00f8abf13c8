package hiring

import (
	"reflect"
	"strings"
	"testing"
)

func acmeDocument(t *testing.T) Document {
	t.Helper()
	root := Mapping(F("data", Mapping(
		F("company", Mapping(
			F("c1", Mapping(
				F("company_id", String("c1")),
				F("company_name", String("Acme")),
				F("job_postings", Sequence(Mapping(
					F("job_posting_id", String("j1")),
					F("job_title", String("Engineer")),
					F("advertised_salary_min", Number(100000)),
				))),
			)),
		)),
	)))
	doc, err := DecodeDocument(root)
	if err != nil {
		t.Fatalf("DecodeDocument returned error: %v", err)
	}
	return doc
}

func fullDocument(t *testing.T) Document {
	t.Helper()
	job := func(id, title string, nested bool) Value {
		fields := []Field{
			F("job_posting_id", String(id)),
			F("job_title", String(title)),
		}
		if nested {
			fields = append(fields,
				F("promises", Sequence(
					Mapping(F("promise_id", String(id+"-p1")), F("promise_text", String("Fast feedback"))),
					Mapping(F("promise_id", String(id+"-p2")), F("promise_type", String("response_time"))),
				)),
				F("personal_vouches", Sequence(
					Mapping(F("vouch_id", String(id+"-pv1")), F("claim_type", String("culture"))),
				)),
			)
		}
		return Mapping(fields...)
	}
	root := Mapping(F("data", Mapping(
		F("company", Mapping(
			F("zeta", Mapping(
				F("company_id", String("c2")),
				F("company_name", String("Zeta")),
				F("job_postings", Sequence(job("j2", "Designer", true), job("j3", "Writer", false))),
			)),
			F("alpha", Mapping(
				F("company_id", String("c1")),
				F("company_name", String("Alpha")),
			)),
		)),
		F("job_posting", Mapping(F("x", job("j9", "Standalone", false)))),
		F("promise", Mapping(F("p", Mapping(F("promise_id", String("p9")), F("promise_text", String("Remote")))))),
		F("vouch", Mapping(F("v", Mapping(F("vouch_id", String("v9")), F("vouch_statement", String("Great team")))))),
		F("personal_vouch", Mapping(F("pv", Mapping(F("vouch_id", String("pv9")), F("claim_type", String("mentorship")))))),
	)))
	doc, err := DecodeDocument(root)
	if err != nil {
		t.Fatalf("DecodeDocument returned error: %v", err)
	}
	return doc
}

func TestFlatten_AcmeScenario(t *testing.T) {
	records := Flatten(acmeDocument(t))
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}

	company := records[0]
	if company.Kind != KindCompany || company.Title != "Acme" || company.ID != "c1" || company.Parent != "" {
		t.Fatalf("company record = %+v, want company c1 titled Acme without parent", company)
	}

	job := records[1]
	if job.Kind != KindJobPosting || job.Title != "Engineer" || job.Parent != "Acme" {
		t.Fatalf("job record = %+v, want job_posting Engineer with parent Acme", job)
	}
	details := strings.Join(Details(job.Entity), " • ")
	if !strings.Contains(details, "Salary: USD 100,000+") {
		t.Fatalf("details = %q, want it to contain %q", details, "Salary: USD 100,000+")
	}
}

func TestFlatten_EmissionOrder(t *testing.T) {
	records := Flatten(fullDocument(t))

	var got []string
	for _, r := range records {
		got = append(got, string(r.Kind)+":"+r.ID)
	}
	want := []string{
		"company:c2",
		"job_posting:j2",
		"promise:j2-p1",
		"promise:j2-p2",
		"personal_vouch:j2-pv1",
		"job_posting:j3",
		"company:c1",
		"job_posting:j9",
		"promise:p9",
		"vouch:v9",
		"personal_vouch:pv9",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("emission order =\n%v\nwant\n%v", got, want)
	}
}

func TestFlatten_TitlesAndParents(t *testing.T) {
	records := Flatten(fullDocument(t))
	byID := make(map[string]Record, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}

	cases := []struct {
		id, title, parent string
	}{
		{"c2", "Zeta", ""},
		{"j2", "Designer", "Zeta"},
		{"j2-p1", "Fast feedback", "Zeta → Designer"},
		{"j2-p2", "response_time", "Zeta → Designer"},
		{"j2-pv1", "culture", "Zeta → Designer"},
		{"j9", "Standalone", ""},
		{"p9", "Remote", ""},
		{"v9", "Great team", ""},
		{"pv9", "mentorship", ""},
	}
	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			r, ok := byID[tc.id]
			if !ok {
				t.Fatalf("record %q missing", tc.id)
			}
			if r.Title != tc.title {
				t.Fatalf("Title = %q, want %q", r.Title, tc.title)
			}
			if r.Parent != tc.parent {
				t.Fatalf("Parent = %q, want %q", r.Parent, tc.parent)
			}
		})
	}
}

func TestFlatten_CountMatchesReachableEntities(t *testing.T) {
	doc := fullDocument(t)
	records := Flatten(doc)
	if len(records) != doc.Len() {
		t.Fatalf("len(records) = %d, want %d", len(records), doc.Len())
	}
	if doc.Len() != 11 {
		t.Fatalf("doc.Len() = %d, want 11", doc.Len())
	}
}

func TestFlatten_Deterministic(t *testing.T) {
	doc := fullDocument(t)
	first := Flatten(doc)
	second := Flatten(doc)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Flatten is not deterministic")
	}
}

func TestFlatten_EmptyDocument(t *testing.T) {
	doc, err := DecodeDocument(Mapping(F("data", Mapping())))
	if err != nil {
		t.Fatalf("DecodeDocument returned error: %v", err)
	}
	if got := Flatten(doc); len(got) != 0 {
		t.Fatalf("Flatten(empty) = %d records, want 0", len(got))
	}
	if got := Filter(Flatten(doc), "", ""); len(got) != 0 {
		t.Fatalf("Filter(empty) = %d records, want 0", len(got))
	}
}

func TestDecodeDocument_Shapes(t *testing.T) {
	if _, err := DecodeDocument(String("nope")); err == nil {
		t.Fatalf("DecodeDocument(scalar) returned nil error")
	}
	doc, err := DecodeDocument(Mapping(F("meta", String("x"))))
	if err != nil {
		t.Fatalf("DecodeDocument(no data) returned error: %v", err)
	}
	if doc.Len() != 0 {
		t.Fatalf("doc.Len() = %d, want 0", doc.Len())
	}
	if _, err := DecodeDocument(Mapping(F("data", Sequence()))); err == nil {
		t.Fatalf("DecodeDocument(data sequence) returned nil error")
	}
}

func TestDecodeDocument_IgnoresNonSequenceNesting(t *testing.T) {
	root := Mapping(F("data", Mapping(F("company", Sequence(
		Mapping(F("company_name", String("Acme")), F("job_postings", String("not a list"))),
	)))))
	doc, err := DecodeDocument(root)
	if err != nil {
		t.Fatalf("DecodeDocument returned error: %v", err)
	}
	if got := Flatten(doc); len(got) != 1 {
		t.Fatalf("Flatten = %d records, want 1", len(got))
	}
}

func TestSearchText_CollectsScalarsInOrder(t *testing.T) {
	v := Mapping(
		F("name", String("Acme Corp")),
		F("size", Number(250)),
		F("public", Empty()),
		F("tags", Sequence(String("Remote"), Number(1.5))),
	)
	if got, want := SearchText(v), "acme corp 250 remote 1.5"; got != want {
		t.Fatalf("SearchText = %q, want %q", got, want)
	}
}

func TestSearchText_RootScalarIsEmpty(t *testing.T) {
	if got := SearchText(String("Acme")); got != "" {
		t.Fatalf("SearchText(scalar) = %q, want empty", got)
	}
	if got := SearchText(Empty()); got != "" {
		t.Fatalf("SearchText(empty) = %q, want empty", got)
	}
}

func TestSearchText_DepthGuard(t *testing.T) {
	nest := func(depth int, leaf Value) Value {
		v := leaf
		for i := 0; i < depth; i++ {
			v = Mapping(F("k", v))
		}
		return v
	}

	if got := SearchText(nest(5, String("Bottom"))); got != "bottom" {
		t.Fatalf("SearchText(depth 5) = %q, want %q", got, "bottom")
	}
	if got := SearchText(nest(6, String("Bottom"))); got != "" {
		t.Fatalf("SearchText(depth 6) = %q, want empty", got)
	}
	if got := SearchText(nest(10, String("Bottom"))); strings.Contains(got, "bottom") {
		t.Fatalf("SearchText(depth 10) = %q, want no contribution from below the cutoff", got)
	}
}

func TestSearchText_LowercaseAndIdempotent(t *testing.T) {
	for _, r := range Flatten(fullDocument(t)) {
		if r.SearchText != strings.ToLower(r.SearchText) {
			t.Fatalf("SearchText %q is not lowercase", r.SearchText)
		}
		if again := SearchText(r.Entity.Raw()); again != r.SearchText {
			t.Fatalf("SearchText re-extraction = %q, want %q", again, r.SearchText)
		}
	}
}

func TestFilter_SearchExcludesParents(t *testing.T) {
	records := Flatten(acmeDocument(t))
	got := Filter(records, "acme", "")
	if len(got) != 1 || got[0].Kind != KindCompany {
		t.Fatalf("Filter(acme) = %+v, want only the company record", got)
	}
}

func TestFilter_TypeOnly(t *testing.T) {
	records := Flatten(acmeDocument(t))
	got := Filter(records, "", KindJobPosting)
	if len(got) != 1 || got[0].ID != "j1" {
		t.Fatalf("Filter(job_posting) = %+v, want exactly j1", got)
	}
}

func TestFilter_CaseInsensitiveUntrimmed(t *testing.T) {
	records := Flatten(acmeDocument(t))
	if got := Filter(records, "ENGINEER", ""); len(got) != 2 {
		t.Fatalf("Filter(ENGINEER) = %d records, want 2", len(got))
	}
	if got := Filter(records, "  acme", ""); len(got) != 0 {
		t.Fatalf("Filter('  acme') = %d records, want 0", len(got))
	}
}

func TestFilter_OrderOfApplicationCommutes(t *testing.T) {
	records := Flatten(fullDocument(t))
	for _, kind := range append([]Kind{""}, Kinds()...) {
		for _, q := range []string{"", "j2", "team", "zzz"} {
			typeFirst := Filter(Filter(records, "", kind), q, "")
			textFirst := Filter(Filter(records, q, ""), "", kind)
			combined := Filter(records, q, kind)
			if !reflect.DeepEqual(typeFirst, textFirst) || !reflect.DeepEqual(typeFirst, combined) {
				t.Fatalf("filters do not commute for kind=%q query=%q", kind, q)
			}
		}
	}
}

func TestDetails_OmitsFalsyValues(t *testing.T) {
	job := decodeJobPosting(Mapping(
		F("location", String("Berlin")),
		F("employment_type", String("")),
		F("advertised_salary_min", Number(0)),
		F("posted_date", String("2024-05-01")),
	))
	got := Details(job)
	want := []string{"Location: Berlin", "Posted: 2024-05-01"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Details = %v, want %v", got, want)
	}
}

func TestDetails_PerKind(t *testing.T) {
	cases := []struct {
		name   string
		entity Entity
		want   []string
	}{
		{
			name: "company",
			entity: decodeCompany(Mapping(
				F("domain", String("acme.io")),
				F("industry", String("Robotics")),
				F("location", String("Austin")),
			)),
			want: []string{"Domain: acme.io", "Industry: Robotics", "Location: Austin"},
		},
		{
			name: "job posting currency",
			entity: decodeJobPosting(Mapping(
				F("advertised_salary_min", Number(85000)),
				F("advertised_salary_currency", String("EUR")),
			)),
			want: []string{"Salary: EUR 85,000+"},
		},
		{
			name: "promise",
			entity: decodePromise(Mapping(
				F("promise_type", String("response_time")),
				F("promised_timeline_days", Number(14)),
				F("promised_value_min", Number(2500)),
			)),
			want: []string{"Type: response_time", "Timeline: 14 days", "Value: 2,500"},
		},
		{
			name: "vouch",
			entity: decodeVouch(Mapping(
				F("claim_type", String("culture")),
				F("source_seniority", String("senior")),
				F("vouch_weight", Number(0.8)),
				F("valid_from", String("2024-01-01")),
				F("voucher_relationship", String("ignored")),
			)),
			want: []string{"Claim: culture", "Seniority: senior", "Weight: 0.8", "Valid from: 2024-01-01"},
		},
		{
			name: "personal vouch",
			entity: decodePersonalVouch(Mapping(
				F("claim_type", String("mentorship")),
				F("voucher_relationship", String("former manager")),
			)),
			want: []string{"Claim: mentorship", "Relationship: former manager"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Details(tc.entity); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Details = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDescription_FallsBackToStatement(t *testing.T) {
	v := decodeVouch(Mapping(F("vouch_statement", String("Great team"))))
	if got := Description(v); got != "Great team" {
		t.Fatalf("Description = %q, want %q", got, "Great team")
	}
	c := decodeCompany(Mapping(F("description", String("Makes things"))))
	if got := Description(c); got != "Makes things" {
		t.Fatalf("Description = %q, want %q", got, "Makes things")
	}
}

func TestRecord_DisplayTitleFallbacks(t *testing.T) {
	if got := (Record{Title: "T", ID: "1"}).DisplayTitle(); got != "T" {
		t.Fatalf("DisplayTitle = %q, want T", got)
	}
	if got := (Record{ID: "1"}).DisplayTitle(); got != "1" {
		t.Fatalf("DisplayTitle = %q, want 1", got)
	}
	if got := (Record{}).DisplayTitle(); got != "untitled" {
		t.Fatalf("DisplayTitle = %q, want untitled", got)
	}
}

func TestParseKind(t *testing.T) {
	for _, in := range []string{"", "all", " ALL "} {
		if k, err := ParseKind(in); err != nil || k != "" {
			t.Fatalf("ParseKind(%q) = %q, %v; want any kind", in, k, err)
		}
	}
	if k, err := ParseKind("Job_Posting"); err != nil || k != KindJobPosting {
		t.Fatalf("ParseKind(Job_Posting) = %q, %v; want job_posting", k, err)
	}
	if _, err := ParseKind("recruiter"); err == nil {
		t.Fatalf("ParseKind(recruiter) returned nil error")
	}
}

func TestScalarFormatting(t *testing.T) {
	cases := []struct {
		in            float64
		plain, grouped string
	}{
		{100000, "100000", "100,000"},
		{1234.5, "1234.5", "1,234.5"},
		{-42, "-42", "-42"},
		{0.8, "0.8", "0.8"},
		{1e21, "1e+21", "1e+21"},
	}
	for _, tc := range cases {
		s, _ := Number(tc.in).Scalar()
		if got := s.String(); got != tc.plain {
			t.Fatalf("String(%v) = %q, want %q", tc.in, got, tc.plain)
		}
		if got := s.Grouped(); got != tc.grouped {
			t.Fatalf("Grouped(%v) = %q, want %q", tc.in, got, tc.grouped)
		}
	}
}
