package mappingRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestActiveMappingFilter(t *testing.T) {
	f := ActiveMappingFilter("pj-1", []string{"p1"})

	assert.Equal(t, "pj-1", f["pooja_id"])
	assert.Equal(t, bson.M{"$in": []string{"p1"}}, f["priest_id"])
	assert.Equal(t, true, f["is_active"])
	assert.Equal(t, bson.M{"$ne": true}, f["is_deleted"])
}
