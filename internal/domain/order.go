package domain

// Order is one pretix order as returned by the orders listing endpoint.
// Orders are read-only; changes go through a position patch.
type Order struct {
	Code      string     `json:"code"`
	Email     string     `json:"email"`
	Status    string     `json:"status"`
	Positions []Position `json:"positions"`
}

// Position is a single ticket line item within an order. It is the unit
// of mutation: patches are scoped to one position.
type Position struct {
	ID                int64          `json:"id"`
	Order             string         `json:"order,omitempty"`
	Item              int64          `json:"item,omitempty"`
	Variation         *int64         `json:"variation,omitempty"`
	AttendeeName      string         `json:"attendee_name,omitempty"`
	AttendeeNameParts map[string]any `json:"attendee_name_parts,omitempty"`
	AttendeeEmail     string         `json:"attendee_email,omitempty"`
	Company           string         `json:"company,omitempty"`
	Street            string         `json:"street,omitempty"`
	Zipcode           string         `json:"zipcode,omitempty"`
	City              string         `json:"city,omitempty"`
	Country           *string        `json:"country"`
	Answers           []Answer       `json:"answers"`
}

// Answer is a (question id, value) pair attached to a position. Question
// ids are expected unique within a position but the service does not
// enforce that.
type Answer struct {
	Question int64  `json:"question"`
	Answer   string `json:"answer"`
}

// Clone returns a deep copy of the position. Outbound patch payloads are
// built from clones so values obtained from the service are never mutated
// in place.
func (p Position) Clone() Position {
	out := p
	if p.Country != nil {
		c := *p.Country
		out.Country = &c
	}
	if p.AttendeeNameParts != nil {
		out.AttendeeNameParts = make(map[string]any, len(p.AttendeeNameParts))
		for k, v := range p.AttendeeNameParts {
			out.AttendeeNameParts[k] = v
		}
	}
	out.Answers = CloneAnswers(p.Answers)
	return out
}

// CloneAnswers copies an answer slice. A nil input stays nil.
func CloneAnswers(answers []Answer) []Answer {
	if answers == nil {
		return nil
	}
	out := make([]Answer, len(answers))
	copy(out, answers)
	return out
}
