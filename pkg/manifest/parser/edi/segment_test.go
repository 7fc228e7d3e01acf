package edi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/edi"
)

func TestTokenize(t *testing.T) {
	segments, delims, err := edi.Tokenize("UNB+UNOA:2+SENDER'\r\nFTX+AAA+++50?% SOJA?: GRANO'RFF+BM:AB1'")
	require.NoError(t, err)
	assert.Equal(t, edi.DefaultDelimiters, delims)
	require.Len(t, segments, 3)

	assert.Equal(t, "UNB", segments[0].Tag)
	assert.Equal(t, "UNOA", segments[0].Value(0, 0))
	assert.Equal(t, "2", segments[0].Value(0, 1))
	assert.Equal(t, "SENDER", segments[0].Value(1, 0))
	assert.Equal(t, "", segments[0].Value(5, 0))

	assert.Equal(t, "50% SOJA: GRANO", segments[1].Value(3, 0))
	assert.Equal(t, 2, segments[2].Index)
}

func TestTokenizeServiceStringAdvice(t *testing.T) {
	segments, delims, err := edi.Tokenize("UNA|*,# ~UNB*UNOA|2*X~MEA*WT*G*KGM|12,5~")
	require.NoError(t, err)
	assert.Equal(t, byte('|'), delims.Component)
	assert.Equal(t, byte('*'), delims.Element)
	assert.Equal(t, byte(','), delims.Decimal)
	assert.Equal(t, byte('~'), delims.Segment)
	require.Len(t, segments, 2)
	assert.Equal(t, "12,5", segments[1].Value(2, 1))
}

func TestTokenizeLineSeparated(t *testing.T) {
	segments, _, err := edi.Tokenize("UNH+1+CUSCAR\nBGM+785+M1\n\nUNT+2+1\n")
	require.NoError(t, err)
	require.Len(t, segments, 3)
	assert.Equal(t, "M1", segments[1].Value(1, 0))
}

func TestTokenizeErrors(t *testing.T) {
	_, _, err := edi.Tokenize("UNA:+")
	assert.ErrorIs(t, err, model.ErrStructuralValidation)

	_, _, err = edi.Tokenize("TOOLONG+1'")
	assert.ErrorIs(t, err, model.ErrStructuralValidation)

	_, _, err = edi.Tokenize("UNB+1?")
	assert.ErrorIs(t, err, model.ErrStructuralValidation)

	_, _, err = edi.Tokenize("  \n ")
	assert.ErrorIs(t, err, model.ErrStructuralValidation)
	assert.EqualError(t, err, "no segments found")
}

func TestScanGroups(t *testing.T) {
	segments, delims, err := edi.Tokenize("GID+1+3:BX'SGP+CSQU3054383'CNI+1'GID+2+1:BX'CNI+2'CNI+3'GID+3+2:BG'")
	require.NoError(t, err)
	doc := edi.Scan(segments, delims)

	require.Len(t, doc.Items, 3)
	require.Len(t, doc.Groups, 3)
	assert.Equal(t, "1", doc.Groups[0].Number)
	assert.Equal(t, []int{1}, doc.Groups[0].Items)
	// The empty group 2 is continued by CNI+3.
	assert.Equal(t, "3", doc.Groups[1].Number)
	assert.Equal(t, []int{2}, doc.Groups[1].Items)
	assert.Equal(t, edi.DefaultGroupNumber, doc.Groups[2].Number)
	assert.Equal(t, []int{0}, doc.Groups[2].Items)
	assert.Equal(t, "BG", doc.Items[2].PackageType)
}
