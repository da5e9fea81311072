package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguages_ClosedSet(t *testing.T) {
	assert.Len(t, Languages, 13)
	assert.Equal(t, JavaScript, Languages[0])
	assert.Equal(t, Plaintext, Languages[len(Languages)-1])
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{in: "python", want: Python},
		{in: "  Go ", want: Go},
		{in: "c#", want: CSharp},
		{in: "C++", want: CPP},
		{in: "JSON", want: JSON},
		{in: "cobol", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguage(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLanguage_LowerAndLexer(t *testing.T) {
	assert.Equal(t, "python", Python.Lower())
	assert.Equal(t, "c#", CSharp.Lower())
	assert.Equal(t, "csharp", CSharp.Lexer())
	assert.Equal(t, "cpp", CPP.Lexer())
	assert.Equal(t, "plaintext", Plaintext.Lexer())
	assert.Equal(t, "typescript", TypeScript.Lexer())
}

func TestLanguage_NextWrapsAround(t *testing.T) {
	assert.Equal(t, TypeScript, JavaScript.Next())
	assert.Equal(t, JavaScript, Plaintext.Next())
	assert.Equal(t, Plaintext, Language("unknown").Next())
}

func TestPromptObject_ToChatRequest_LowercasesLanguage(t *testing.T) {
	p := PromptObject{UserID: "u1", Plaintext: "hi", Code: "x", Language: Python}
	req := p.ToChatRequest()

	assert.Equal(t, ChatRequest{UserID: "u1", UserText: "hi", Code: "x", Lang: "python"}, req)
}

func TestConversationTurn_IsRenderable(t *testing.T) {
	assert.True(t, NewTurn(RoleUser, "hi").IsRenderable())
	assert.False(t, ConversationTurn{Role: RoleModel}.IsRenderable())
	assert.Equal(t, "", ConversationTurn{Role: RoleModel}.Text())
}

func TestUserProfile_SerialisesEmptyHistory(t *testing.T) {
	data, err := json.Marshal(NewUserProfile("u"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"u","chatHistory":[]}`, string(data))
}

func TestErrorResponse_Text(t *testing.T) {
	assert.Equal(t, "bad credentials", ErrorResponse{Error: "bad credentials"}.Text())
	assert.Equal(t, "too big", ErrorResponse{Error: "code_too_large", Message: "too big"}.Text())
	assert.Equal(t, "", ErrorResponse{}.Text())
}
