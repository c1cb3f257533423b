package tvmaze

import (
	"context"
	"fmt"
)

// GetPerson fetches a person by TVMaze id; embed "castcredits" to include credits
func (c *Client) GetPerson(ctx context.Context, id int, embed ...string) (*Person, error) {
	if err := requireID("person id", id); err != nil {
		return nil, err
	}
	var q Query
	if err := q.addEmbed(embed); err != nil {
		return nil, err
	}
	return getOne[Person](ctx, c, "people", fmt.Sprintf("/people/%d", id), q)
}

// GetPersonCastCredits lists the shows a person is cast in
func (c *Client) GetPersonCastCredits(ctx context.Context, id int, embed ...string) ([]CastCredit, error) {
	return c.castCredits(ctx, "people.castcredits", "/people/%d/castcredits", id, embed)
}

// GetPersonGuestCastCredits lists the episodes a person guest-starred in
func (c *Client) GetPersonGuestCastCredits(ctx context.Context, id int, embed ...string) ([]CastCredit, error) {
	return c.castCredits(ctx, "people.guestcastcredits", "/people/%d/guestcastcredits", id, embed)
}

func (c *Client) castCredits(ctx context.Context, endpoint, pathFormat string, id int, embed []string) ([]CastCredit, error) {
	if err := requireID("person id", id); err != nil {
		return nil, err
	}
	var q Query
	if err := q.addEmbed(embed); err != nil {
		return nil, err
	}
	return get[[]CastCredit](ctx, c, endpoint, fmt.Sprintf(pathFormat, id), q)
}

// GetPersonCrewCredits lists the shows a person has a crew role in
func (c *Client) GetPersonCrewCredits(ctx context.Context, id int, embed ...string) ([]CrewCredit, error) {
	if err := requireID("person id", id); err != nil {
		return nil, err
	}
	var q Query
	if err := q.addEmbed(embed); err != nil {
		return nil, err
	}
	return get[[]CrewCredit](ctx, c, "people.crewcredits", fmt.Sprintf("/people/%d/crewcredits", id), q)
}

// GetPersonIndex lists one page of all people, up to 1000 per page, paged by id.
// Page 0 is treated as page 1.
func (c *Client) GetPersonIndex(ctx context.Context, page int) ([]Person, error) {
	q, err := pageQuery(page)
	if err != nil {
		return nil, err
	}
	return get[[]Person](ctx, c, "people.index", "/people", q)
}
