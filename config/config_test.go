package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/require"
)

func TestGetters(t *testing.T) {
	c := map[string]string{
		"PORT":             "9090",
		"BAD_INT":          "nine",
		"EMPTY":            "",
		"DEBUG":            "true",
		"MAX":              "1048576",
		"TIMEOUT":          "15",
		"ACCEPTED_ORIGINS": " https://a.example , ,https://b.example",
	}

	require.Equal(t, "9090", GetString(c, "PORT", "8080"))
	require.Equal(t, "fallback", GetString(c, "EMPTY", "fallback"))
	require.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))
	require.Equal(t, 9090, GetInt(c, "PORT", 8080))
	require.Equal(t, 7, GetInt(c, "BAD_INT", 7))
	require.Equal(t, int64(1048576), GetInt64(c, "MAX", 0))
	require.True(t, GetBool(c, "DEBUG", false))
	require.Equal(t, 15*time.Second, GetSeconds(c, "TIMEOUT", time.Minute))
	require.Equal(t, time.Minute, GetSeconds(c, "MISSING", time.Minute))
	require.Equal(t, []string{"https://a.example", "https://b.example"}, GetStrings(c, "ACCEPTED_ORIGINS", nil))
	require.Equal(t, []string{"*"}, GetStrings(c, "MISSING", []string{"*"}))
}

func TestSplit(t *testing.T) {
	k, v := split("DATABASE_URL=postgres://u:p@h/db?sslmode=disable")
	require.Equal(t, "DATABASE_URL", k)
	require.Equal(t, "postgres://u:p@h/db?sslmode=disable", v)

	k, v = split("NOVALUE")
	require.Equal(t, "NOVALUE", k)
	require.Empty(t, v)
}

type fakeParams struct {
	value string
	err   error
	asked string
}

func (f *fakeParams) GetParameter(ctx context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	f.asked = aws.ToString(in.Name)
	if f.err != nil {
		return nil, f.err
	}
	return &ssm.GetParameterOutput{Parameter: &types.Parameter{Value: aws.String(f.value)}}, nil
}

func TestResolveJWTSecret(t *testing.T) {
	ctx := context.Background()

	secret, err := ResolveJWTSecret(ctx, map[string]string{"JWT_SECRET": "from-env"}, &fakeParams{value: "unused"})
	require.NoError(t, err)
	require.Equal(t, "from-env", secret)

	params := &fakeParams{value: "from-ssm"}
	secret, err = ResolveJWTSecret(ctx, map[string]string{"JWT_SECRET_SSM_PARAM": "/site/jwt"}, params)
	require.NoError(t, err)
	require.Equal(t, "from-ssm", secret)
	require.Equal(t, "/site/jwt", params.asked)

	_, err = ResolveJWTSecret(ctx, map[string]string{"JWT_SECRET_SSM_PARAM": "/site/jwt"}, &fakeParams{err: errors.New("access denied")})
	require.ErrorContains(t, err, "access denied")

	secret, err = ResolveJWTSecret(ctx, map[string]string{}, nil)
	require.NoError(t, err)
	require.Equal(t, DefaultJWTSecret, secret)
}
