package notion

import "bookclub/internal/domain/book"

// Wire types for the Notion page-creation schema. Property names are the
// Korean column titles of the club's Notion database. Rating is sent as a
// number and genre as a select; no date property is sent.
type pageRequest struct {
	Parent     parentRef           `json:"parent"`
	Properties map[string]property `json:"properties"`
}

type parentRef struct {
	DatabaseID string `json:"database_id"`
}

type property struct {
	Title    []richText    `json:"title,omitempty"`
	RichText []richText    `json:"rich_text,omitempty"`
	Select   *selectOption `json:"select,omitempty"`
	Number   *int          `json:"number,omitempty"`
	Checkbox *bool         `json:"checkbox,omitempty"`
}

type richText struct {
	Text textContent `json:"text"`
}

type textContent struct {
	Content string `json:"content"`
}

type selectOption struct {
	Name string `json:"name"`
}

// buildPageRequest maps a book entry onto the database's typed property slots.
func buildPageRequest(databaseID string, entry book.Entry) pageRequest {
	rating := entry.Rating
	completed := entry.Completed

	props := map[string]property{
		"이름":    {Select: &selectOption{Name: entry.MemberName}},
		"책 제목":  {Title: []richText{{Text: textContent{Content: entry.Title}}}},
		"저자":    {RichText: []richText{{Text: textContent{Content: entry.Author}}}},
		"완독 여부": {Checkbox: &completed},
		"별점":    {Number: &rating},
		"한줄평":   {RichText: []richText{{Text: textContent{Content: entry.Review}}}},
	}
	if entry.Genre != "" {
		props["장르"] = property{Select: &selectOption{Name: entry.Genre}}
	}

	return pageRequest{
		Parent:     parentRef{DatabaseID: databaseID},
		Properties: props,
	}
}
