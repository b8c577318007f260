package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Team{ID: "t1", Name: "Hajduk"}.Validate())
	assert.Error(t, Team{Name: "Hajduk"}.Validate())
	assert.Error(t, Team{ID: "t1"}.Validate())
}

func TestNames_SkipsBlankAndRepeated(t *testing.T) {
	t.Parallel()

	got := Names([]Team{{Name: "Rijeka"}, {Name: ""}, {Name: "Osijek"}, {Name: "Rijeka"}})
	assert.Equal(t, []string{"Rijeka", "Osijek"}, got)
}
