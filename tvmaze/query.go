package tvmaze

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// dateLayout is the calendar date format TVMaze expects in query strings
const dateLayout = "2006-01-02"

// param is a single name=value pair of a query string
type param struct {
	name  string
	value string
}

// Query is an ordered list of query parameters. Unlike url.Values it keeps
// insertion order and never merges repeated names.
type Query struct {
	params []param
}

// Add appends a parameter
func (q *Query) Add(name, value string) {
	q.params = append(q.params, param{name: name, value: value})
}

// AddInt appends an integer parameter
func (q *Query) AddInt(name string, value int) {
	q.Add(name, strconv.Itoa(value))
}

// AddDate appends a date parameter formatted as yyyy-mm-dd
func (q *Query) AddDate(name string, t time.Time) {
	q.Add(name, t.Format(dateLayout))
}

// Len returns the number of parameters
func (q *Query) Len() int {
	return len(q.params)
}

// Encode renders the parameters as name=value pairs joined by '&'.
// Values are query-escaped; names are written as-is.
func (q *Query) Encode() string {
	var sb strings.Builder
	for i, p := range q.params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.name)
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}
	return sb.String()
}

// addEmbed encodes embed selectors. A single token is sent as embed=<token>,
// several tokens are each sent as embed[]=<token>.
//
// Every token is emitted. Older clients stopped after the first embed[] entry,
// which silently dropped the remaining sub-resources.
func (q *Query) addEmbed(tokens []string) error {
	for _, t := range tokens {
		if strings.TrimSpace(t) == "" {
			return invalidArgument("empty embed token")
		}
	}

	switch len(tokens) {
	case 0:
		return nil
	case 1:
		q.Add("embed", tokens[0])
	default:
		for _, t := range tokens {
			q.Add("embed[]", t)
		}
	}
	return nil
}

// buildURL joins base address, path and query string
func buildURL(baseURL, path string, q Query) string {
	if q.Len() == 0 {
		return baseURL + path
	}
	return baseURL + path + "?" + q.Encode()
}

func requireID(name string, id int) error {
	if id <= 0 {
		return invalidArgument("%s must be positive, got %d", name, id)
	}
	return nil
}

// pageQuery builds the page parameter of the index endpoints; 0 selects the first page
func pageQuery(page int) (Query, error) {
	var q Query
	if page < 0 {
		return q, invalidArgument("page must not be negative, got %d", page)
	}
	if page == 0 {
		page = 1
	}
	q.AddInt("page", page)
	return q, nil
}
