package schema

// BoardArticleTable represents the 'board.article' table
type BoardArticleTable struct {
	Table      string
	ID         string
	Title      string
	Content    string
	AccountID  string
	RegDate    string
	UpdateDate string
}

// BoardArticle is the schema definition for board.article
var BoardArticle = BoardArticleTable{
	Table:      "board.article",
	ID:         "id",
	Title:      "title",
	Content:    "content",
	AccountID:  "accountid",
	RegDate:    "regdate",
	UpdateDate: "updatedate",
}

func (t BoardArticleTable) Columns() []string {
	return []string{t.ID, t.Title, t.Content, t.AccountID, t.RegDate, t.UpdateDate}
}
