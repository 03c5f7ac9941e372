package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTagIsValue(t *testing.T) {
	valueTags := []Tag{TagString, TagBool, TagInt, TagFloat, TagUInt, TagNull}
	for _, tag := range valueTags {
		require.True(t, tag.IsValue(), "%s should be a value tag", tag)
		require.False(t, tag.IsContainer(), "%s should not be a container tag", tag)
	}
}

func TestTagIsContainer(t *testing.T) {
	containerTags := []Tag{TagArray, TagHash, TagInt64, TagUInt64, TagDouble}
	for _, tag := range containerTags {
		require.True(t, tag.IsContainer(), "%s should be a container tag", tag)
		require.False(t, tag.IsValue(), "%s should not be a value tag", tag)
	}
}

func TestTagKnown(t *testing.T) {
	require.True(t, TagHash.Known())
	require.True(t, TagStringTable.Known())
	require.False(t, Tag(0x99).Known())
}

func TestTagString(t *testing.T) {
	require.Equal(t, "Hash", TagHash.String())
	require.Contains(t, Tag(0x99).String(), "0x99")
}

func TestTagValues(t *testing.T) {
	require.Equal(t, Tag(0xA0), TagString)
	require.Equal(t, Tag(0xC0), TagArray)
	require.Equal(t, Tag(0xC1), TagHash)
	require.Equal(t, Tag(0xC2), TagStringTable)
	require.Equal(t, Tag(0xD0), TagBool)
	require.Equal(t, Tag(0xD1), TagInt)
	require.Equal(t, Tag(0xD2), TagFloat)
	require.Equal(t, Tag(0xD3), TagUInt)
	require.Equal(t, Tag(0xD4), TagInt64)
	require.Equal(t, Tag(0xD5), TagUInt64)
	require.Equal(t, Tag(0xD6), TagDouble)
	require.Equal(t, Tag(0xFF), TagNull)
}
