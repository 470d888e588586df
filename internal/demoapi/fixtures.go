package demoapi

import "net/http"

// Fixture names one canned upstream response.
type Fixture string

const (
	FixtureRecords     Fixture = "records"
	FixtureNotArray    Fixture = "not-array"
	FixtureEmpty       Fixture = "empty"
	FixtureNotFound    Fixture = "not-found"
	FixtureServerError Fixture = "server-error"
)

type response struct {
	status int
	body   string
}

var fixtures = map[Fixture]response{
	FixtureRecords: {http.StatusOK, `{"message":[` +
		`{"customer":"Acme Corp","region":"north","total":1520.5,"paid":true},` +
		`{"customer":"Globex","region":"south","total":980,"paid":false,"notes":null},` +
		`{"customer":"Initech","total":0.000001,"tags":["priority","q3"],"contact":{"name":"Bill","ext":42}},` +
		`{"region":"east","total":1e21,"paid":true}` +
		`]}`},
	FixtureNotArray:    {http.StatusOK, `{"message":"not-an-array"}`},
	FixtureEmpty:       {http.StatusOK, `{"message":[]}`},
	FixtureNotFound:    {http.StatusNotFound, `{"message":"Report not found","exc_type":"DoesNotExistError"}`},
	FixtureServerError: {http.StatusInternalServerError, `{"exc_type":"ValidationError","exc":"Traceback (most recent call last): ..."}`},
}

// Fixtures returns every fixture name in a stable order.
func Fixtures() []Fixture {
	return []Fixture{FixtureRecords, FixtureNotArray, FixtureEmpty, FixtureNotFound, FixtureServerError}
}

// Valid reports whether f names a known fixture.
func (f Fixture) Valid() bool {
	_, ok := fixtures[f]
	return ok
}
