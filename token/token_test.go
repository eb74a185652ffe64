// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/exprcompile/token"
)

func TestKindStrings(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	for i := range token.KindTotal {
		kind := token.Kind(i)
		back, ok := token.KindFromString(kind.String())
		assert.True(ok, "%v", kind)
		assert.Equal(kind, back)
	}

	assert.Equal("Kind(200)", token.Kind(200).String())
	assert.Equal("token.Punct", token.Punct.GoString())
	assert.Equal("Close", token.Close.String())
	assert.Equal("Float", token.Float.String())
}

func TestTokenString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{}, "EOF"},
		{token.NewPunct('(', token.Open, 2), "Punct('(' Open 2)"},
		{token.NewPunct(';', token.Separator, 7), "Punct(';' Separator)"},
		{token.NewOperator("&&"), `Operator("&&")`},
		{token.NewIdent("x1"), "Ident(x1)"},
		{token.NewBool(false), "Bool(false)"},
		{token.NewNumber("1e5", token.Float), "Number(1e5 Float)"},
		{token.NewString(`a"b`), `String("a\"b")`},
		{token.NewUnknown("@"), `Unknown("@")`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.tok.String())
	}
}

func TestTokenPredicates(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	pos := token.Position{Line: 2, Column: 3, Offset: 9}
	open := token.NewPunct('(', token.Open, 0).At(pos)

	assert.True(open.IsPunct('('))
	assert.False(open.IsPunct(')'))
	assert.False(open.IsEOF())
	assert.True(open.Equal(token.NewPunct('(', token.Open, 0)))
	assert.False(open.Equal(token.NewPunct('(', token.Open, 1)))
	assert.Equal(pos, open.Pos)

	op := token.NewOperator("<=")
	assert.True(op.IsOperator("<", "<="))
	assert.False(op.IsOperator("<"))
	assert.False(token.NewIdent("<=").IsOperator("<="))

	assert.Equal(4, token.NewBool(true).Len())
	assert.Equal(5, token.NewBool(false).Len())
	assert.Equal(5, token.NewString("abc").Len())
	assert.Equal(3, token.NewNumber("1.5", token.Float).Len())
	// Lengths are in bytes, matching span offsets.
	assert.Equal(5, token.NewString("貓").Len())
	assert.Equal(4, token.NewIdent("név").Len())
	assert.Equal(1, token.NewPunct('(', token.Open, 0).Len())
}

func TestPosition(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal("?:?", token.Position{}.String())
	assert.Equal("1:1", token.Start.String())
	assert.True(token.Start.Less(token.Position{Line: 1, Column: 2, Offset: 1}))
}

func TestTokenJSON(t *testing.T) {
	t.Parallel()

	pos := token.Position{Line: 1, Column: 4, Offset: 3}
	data, err := json.Marshal(token.NewPunct(']', token.Close, 0).At(pos))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"kind":"Punct","raw":"]","balance":"Close","depth":0,"pos":{"line":1,"column":4,"offset":3}}`,
		string(data))

	data, err = json.Marshal(token.NewNumber("2.5e-3", token.Float))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Number","raw":"2.5e-3","hint":"Float"}`, string(data))

	data, err = json.Marshal(token.NewBool(false))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Bool","value":false}`, string(data))

	toks := []token.Token{
		{},
		token.NewPunct(',', token.Separator, 0),
		token.NewOperator("!="),
		token.NewIdent("name").At(pos),
		token.NewBool(true),
		token.NewString(""),
		token.NewUnknown("#"),
	}
	data, err = json.Marshal(toks)
	require.NoError(t, err)

	var back []token.Token
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, toks, back)

	var bad token.Token
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"Nope"}`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"Punct","raw":"((","balance":"Open"}`), &bad))
}
