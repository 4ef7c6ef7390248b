package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"
)

// DefaultJWTSecret signs credentials when neither JWT_SECRET nor
// JWT_SECRET_SSM_PARAM is configured. Deployments must override it.
const DefaultJWTSecret = "your-secret-key"

// ParameterGetter is the slice of the SSM client used to read secrets.
type ParameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// LoadAWSConfig loads the default AWS credential chain, honouring AWS_REGION from c.
func LoadAWSConfig(ctx context.Context, c map[string]string) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region := GetString(c, "AWS_REGION", ""); region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

// ResolveJWTSecret returns the credential signing secret. JWT_SECRET wins, then
// the SSM parameter named by JWT_SECRET_SSM_PARAM, then DefaultJWTSecret.
// params may be nil, in which case an SSM client is built on demand.
func ResolveJWTSecret(ctx context.Context, c map[string]string, params ParameterGetter) (string, error) {
	if secret := GetString(c, "JWT_SECRET", ""); secret != "" {
		return secret, nil
	}

	name := GetString(c, "JWT_SECRET_SSM_PARAM", "")
	if name == "" {
		log.Warn().Msg("JWT_SECRET is not set, signing credentials with the built-in default secret")
		return DefaultJWTSecret, nil
	}

	if params == nil {
		awsCfg, err := LoadAWSConfig(ctx, c)
		if err != nil {
			return "", fmt.Errorf("load aws config: %w", err)
		}
		params = ssm.NewFromConfig(awsCfg)
	}

	out, err := params.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("read ssm parameter %s: %w", name, err)
	}
	if out.Parameter == nil || aws.ToString(out.Parameter.Value) == "" {
		return "", fmt.Errorf("ssm parameter %s is empty", name)
	}

	log.Info().Str("parameter", name).Msg("Loaded JWT secret from SSM")
	return aws.ToString(out.Parameter.Value), nil
}
