package tables_test

import (
	"minitienda_server/structs/tables"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerFullName(t *testing.T) {
	t.Parallel()

	c := &tables.Customer{FirstName: "Ana", LastName: "García"}
	assert.Equal(t, "Ana García", c.FullName())

	c = &tables.Customer{FirstName: "Ana"}
	assert.Equal(t, "Ana", c.FullName())

	c = &tables.Customer{LastName: "García"}
	assert.Equal(t, "García", c.FullName())

	assert.Equal(t, "", (&tables.Customer{}).FullName())
}
