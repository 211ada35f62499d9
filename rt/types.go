package rt

import "encoding/json"

// ID is an entity identifier. RT serializes ids as strings in hypermedia
// references but as bare numbers in a few places (ticket GET, create
// responses), so decoding accepts both.
type ID string

// UnmarshalJSON accepts both string and number representations.
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// String returns the identifier as a string.
func (id ID) String() string {
	return string(id)
}

// Flex is a scalar field whose JSON type varies across RT versions
// (string vs. number), e.g. Priority or Disabled.
type Flex string

// UnmarshalJSON accepts both string and number representations.
func (f *Flex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = Flex(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = Flex(n.String())
	return nil
}

// String returns the scalar as a string.
func (f Flex) String() string {
	return string(f)
}

// Ref is a hypermedia reference to another entity.
type Ref struct {
	Type string `json:"type"`
	ID   ID     `json:"id"`
	URL  string `json:"_url"`
}

// SearchResult is RT's pagination envelope for collection and history
// endpoints.
type SearchResult struct {
	Count   int   `json:"count"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Pages   int   `json:"pages"`
	Total   int   `json:"total"`
	Items   []Ref `json:"items"`
}

// CustomFieldValue is one custom field with its values as returned on
// tickets and assets.
type CustomFieldValue struct {
	ID     ID       `json:"id"`
	Name   string   `json:"name"`
	Type   string   `json:"type,omitempty"`
	Values []string `json:"values"`
}

// Ticket is a ticket as returned by GET /ticket/{id}. Fields the remote
// instance adds beyond these are ignored.
type Ticket struct {
	ID              ID                 `json:"id"`
	Subject         string             `json:"Subject"`
	Status          string             `json:"Status"`
	Queue           *Ref               `json:"Queue"`
	Owner           *Ref               `json:"Owner"`
	Creator         *Ref               `json:"Creator"`
	Requestor       []Ref              `json:"Requestor"`
	Cc              []Ref              `json:"Cc"`
	AdminCc         []Ref              `json:"AdminCc"`
	Priority        Flex               `json:"Priority"`
	InitialPriority Flex               `json:"InitialPriority"`
	FinalPriority   Flex               `json:"FinalPriority"`
	TimeEstimated   Flex               `json:"TimeEstimated"`
	TimeWorked      Flex               `json:"TimeWorked"`
	TimeLeft        Flex               `json:"TimeLeft"`
	Created         string             `json:"Created"`
	Started         string             `json:"Started"`
	Due             string             `json:"Due"`
	Resolved        string             `json:"Resolved"`
	LastUpdated     string             `json:"LastUpdated"`
	CustomFields    []CustomFieldValue `json:"CustomFields"`
}

// Queue is a queue as returned by GET /queue/{id}.
type Queue struct {
	ID                ID     `json:"id"`
	Name              string `json:"Name"`
	Description       string `json:"Description"`
	Lifecycle         string `json:"Lifecycle"`
	SubjectTag        string `json:"SubjectTag"`
	CorrespondAddress string `json:"CorrespondAddress"`
	CommentAddress    string `json:"CommentAddress"`
	Disabled          Flex   `json:"Disabled"`
	Created           string `json:"Created"`
	LastUpdated       string `json:"LastUpdated"`
}

// User is a user as returned by GET /user/{id}.
type User struct {
	ID           ID     `json:"id"`
	Name         string `json:"Name"`
	EmailAddress string `json:"EmailAddress"`
	RealName     string `json:"RealName"`
	NickName     string `json:"NickName"`
	Gecos        string `json:"Gecos"`
	Lang         string `json:"Lang"`
	Timezone     string `json:"Timezone"`
	Organization string `json:"Organization"`
	Address1     string `json:"Address1"`
	Address2     string `json:"Address2"`
	City         string `json:"City"`
	State        string `json:"State"`
	Zip          string `json:"Zip"`
	Country      string `json:"Country"`
	HomePhone    string `json:"HomePhone"`
	WorkPhone    string `json:"WorkPhone"`
	MobilePhone  string `json:"MobilePhone"`
	PagerPhone   string `json:"PagerPhone"`
	Disabled     Flex   `json:"Disabled"`
	Privileged   Flex   `json:"Privileged"`
}

// Asset is an asset as returned by GET /asset/{id}.
type Asset struct {
	ID           ID                 `json:"id"`
	Name         string             `json:"Name"`
	Description  string             `json:"Description"`
	Status       string             `json:"Status"`
	Owner        *Ref               `json:"Owner"`
	HeldBy       []Ref              `json:"HeldBy"`
	Contact      []Ref              `json:"Contact"`
	Catalog      *Ref               `json:"Catalog"`
	Created      string             `json:"Created"`
	LastUpdated  string             `json:"LastUpdated"`
	CustomFields []CustomFieldValue `json:"CustomFields"`
}
