package response

import (
	"engage-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// copied maps a read model onto a response DTO by matching field names.
// View and response structs are kept separate so the wire format can
// drift from the read model without touching the query layer.
func copied[T any](from any) *T {
	var to T
	if err := copier.Copy(&to, from); err != nil {
		panic(err)
	}
	return &to
}

func cursorString(c *queries.Cursor) *string {
	if c == nil || c.After == "" {
		return nil
	}
	after := c.After
	return &after
}
