package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := map[string]string{
		"BookID":        "bookid",
		"book_id":       "bookid",
		"book-id":       "bookid",
		"Order Items":   "orderitems",
		"XMLParser":     "xmlparser",
		"":              "",
		"already_snake": "alreadysnake",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizeIdent(in), in)
	}
}

func TestTokenizeIdent(t *testing.T) {
	assert.Equal(t, []string{"order", "id"}, TokenizeIdent("OrderID"))
	assert.Equal(t, []string{"get", "http", "response"}, TokenizeIdent("getHTTPResponse"))
	assert.Equal(t, []string{"many", "to", "many"}, TokenizeIdent("many_to_many"))
	assert.Nil(t, TokenizeIdent(""))
}

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Tags":        "tags",
		"OrderID":     "order_id",
		"XMLParser":   "xml_parser",
		"Attachments": "attachments",
		"first_name":  "first_name",
	}

	for in, want := range tests {
		assert.Equal(t, want, SnakeCase(in), in)
	}
}
