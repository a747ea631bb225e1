package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList("   "))
	assert.Nil(t, SplitList(",,"))

	assert.Equal(t, []string{"a", "b", "c"}, SplitList("a,b,c"))
	assert.Equal(t, []string{"a", "b"}, SplitList(" a , b "))

	// Order and duplicates are preserved.
	assert.Equal(t, []string{"2", "1", "2"}, SplitList("2,1,2"))

	// Blank tokens are dropped, the rest survive.
	assert.Equal(t, []string{"x", "y"}, SplitList("x,,y"))
}

func TestIntList(t *testing.T) {
	assert.Nil(t, IntList(""))
	assert.Equal(t, []int64{110, 700}, IntList("110,700"))
	assert.Equal(t, []int64{110, 700}, IntList(" 110 , 700 "))

	// Unparseable tokens are dropped without failing the rest.
	assert.Equal(t, []int64{5}, IntList("abc,5,12.5"))

	// Nothing survives: the filter behaves as absent.
	assert.Nil(t, IntList("abc,def"))
	assert.Nil(t, IntList("'); DROP TABLE Incidents;--"))
}

func TestLimit(t *testing.T) {
	assert.Equal(t, int64(50), Limit("50"))
	assert.Equal(t, int64(DefaultLimit), Limit(""))
	assert.Equal(t, int64(DefaultLimit), Limit("abc"))
	assert.Equal(t, int64(DefaultLimit), Limit("-5"))
	assert.Equal(t, int64(DefaultLimit), Limit("0"))
}
