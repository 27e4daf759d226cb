package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestVisibilityFor(t *testing.T) {
	id := uuid.New()

	assert.Equal(t, ScopeAll, VisibilityFor(Principal{UserID: id, Role: RoleSuperAdmin}).Scope)
	assert.Equal(t, ScopeProductOwner, VisibilityFor(Principal{UserID: id, Role: RoleAdmin}).Scope)
	assert.Equal(t, ScopeProductOwner, VisibilityFor(Principal{UserID: id, Role: RoleSeller}).Scope)
	assert.Equal(t, ScopeOrderOwner, VisibilityFor(Principal{UserID: id, Role: RoleCustomer}).Scope)
	assert.Equal(t, ScopeOrderOwner, VisibilityFor(Principal{UserID: id, Role: Role("unknown")}).Scope)
	assert.Equal(t, id, VisibilityFor(Principal{UserID: id, Role: RoleSeller}).UserID)
}

func TestVisibility_Allows(t *testing.T) {
	customer, other := uuid.New(), uuid.New()
	seller, otherSeller := uuid.New(), uuid.New()
	mine, theirs := uuid.New(), uuid.New()

	order := &Order{
		OwnerID: customer,
		Lines: []OrderLine{
			{ProductID: theirs, Quantity: 1},
			{ProductID: mine, Quantity: 1},
		},
	}
	owners := map[uuid.UUID]uuid.UUID{mine: seller, theirs: otherSeller}

	tests := []struct {
		name      string
		principal Principal
		owners    map[uuid.UUID]uuid.UUID
		want      bool
	}{
		{"super admin sees everything", Principal{UserID: other, Role: RoleSuperAdmin}, nil, true},
		{"customer sees own order", Principal{UserID: customer, Role: RoleCustomer}, nil, true},
		{"customer never sees another's order", Principal{UserID: other, Role: RoleCustomer}, owners, false},
		{"seller sees order with one of their lines", Principal{UserID: seller, Role: RoleSeller}, owners, true},
		{"admin sees order with one of their lines", Principal{UserID: otherSeller, Role: RoleAdmin}, owners, true},
		{"seller without lines", Principal{UserID: other, Role: RoleSeller}, owners, false},
		{"seller who placed the order but owns no line", Principal{UserID: customer, Role: RoleSeller}, owners, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VisibilityFor(tt.principal).Allows(order, tt.owners))
		})
	}
}
