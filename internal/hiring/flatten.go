package hiring

// Record is the flat, searchable projection of one entity.
type Record struct {
	Kind       Kind
	ID         string
	Title      string
	Parent     string
	SearchText string
	Entity     Entity
}

// DisplayTitle returns the title, falling back to the id and then to
// "untitled".
func (r Record) DisplayTitle() string {
	switch {
	case r.Title != "":
		return r.Title
	case r.ID != "":
		return r.ID
	default:
		return "untitled"
	}
}

const breadcrumbSep = " → "

// Flatten walks doc and returns one record per entity. Each company is
// followed by its job postings, and each job posting by its promises and then
// its personal vouches. Top-level job postings, promises, vouches and personal
// vouches follow, in that order.
func Flatten(doc Document) []Record {
	records := make([]Record, 0, doc.Len())
	for _, c := range doc.Companies {
		records = append(records, newRecord(c, ""))
		for _, j := range c.JobPostings {
			records = append(records, newRecord(j, c.Name))
			parent := c.Name + breadcrumbSep + j.Title
			for _, p := range j.Promises {
				records = append(records, newRecord(p, parent))
			}
			for _, pv := range j.PersonalVouches {
				records = append(records, newRecord(pv, parent))
			}
		}
	}
	for _, j := range doc.JobPostings {
		records = append(records, newRecord(j, ""))
	}
	for _, p := range doc.Promises {
		records = append(records, newRecord(p, ""))
	}
	for _, v := range doc.Vouches {
		records = append(records, newRecord(v, ""))
	}
	for _, pv := range doc.PersonalVouches {
		records = append(records, newRecord(pv, ""))
	}
	return records
}

func newRecord(e Entity, parent string) Record {
	id, title := identify(e)
	return Record{
		Kind:       e.Kind(),
		ID:         id,
		Title:      title,
		Parent:     parent,
		SearchText: SearchText(e.Raw()),
		Entity:     e,
	}
}

func identify(e Entity) (id, title string) {
	switch e := e.(type) {
	case Company:
		return e.ID, e.Name
	case JobPosting:
		return e.ID, e.Title
	case Promise:
		return e.ID, firstNonEmpty(e.Text, e.Type)
	case Vouch:
		return e.ID, firstNonEmpty(e.Statement, e.ClaimType)
	case PersonalVouch:
		return e.ID, firstNonEmpty(e.Statement, e.ClaimType)
	default:
		return "", ""
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
