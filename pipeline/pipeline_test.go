package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goutcome/outcome_go/msgkey"
	"github.com/goutcome/outcome_go/outcome"
	"github.com/goutcome/outcome_go/pipeline"
)

var (
	errTooShort = msgkey.MustDefinition("username.tooShort").WithIntParameter("min")
	errReserved = msgkey.MustDefinition("username.reserved").WithStringParameter("name")
	errTaken    = msgkey.MustDefinition("username.taken").WithStringParameter("name")
)

func TestValidateReturnsValueOnSuccess(t *testing.T) {
	p := pipeline.New[string]().
		AddRule(func(name string) outcome.Outcome {
			if len(name) < 3 {
				return outcome.Error(errTooShort, 3)
			}
			return outcome.Ok()
		})

	out := p.Validate("valid-name")
	assert.Equal(t, "valid-name", out.MustValue())
}

func TestValidateRunsEveryRuleFailSlow(t *testing.T) {
	calls := 0
	rule := func(result outcome.Outcome) pipeline.Rule[string] {
		return func(string) outcome.Outcome {
			calls++
			return result
		}
	}

	p := pipeline.New[string]().
		AddRule(rule(outcome.Error(errTooShort, 3))).
		AddRule(rule(outcome.Ok())).
		AddRule(rule(outcome.Error(errReserved, "admin")))

	out := p.Validate("admin")
	assert.Equal(t, 3, calls)
	assert.True(t, out.IsFailure())

	msgs := out.Messages()
	assert.Len(t, msgs, 2)
	assert.Equal(t, "username.tooShort", msgs[0].TranslationKey())
	assert.Equal(t, "username.reserved", msgs[1].TranslationKey())
}

func TestValidateCarriesNoValueOnFailure(t *testing.T) {
	p := pipeline.New[string]().
		AddRule(func(string) outcome.Outcome { return outcome.Error(errReserved, "root") })

	out := p.Validate("root")
	_, present := out.Value()
	assert.False(t, present)
}

func TestValidateCtxMergesAsyncRules(t *testing.T) {
	p := pipeline.New[string]().
		AddRule(func(name string) outcome.Outcome {
			if len(name) < 3 {
				return outcome.Error(errTooShort, 3)
			}
			return outcome.Ok()
		}).
		AddAsyncRule(func(_ context.Context, name string) outcome.Outcome {
			if name == "ab" {
				return outcome.Error(errTaken, name)
			}
			return outcome.Ok()
		})

	out := p.ValidateCtx(context.Background(), "ab")
	assert.True(t, out.IsFailure())

	msgs := out.Messages()
	assert.Len(t, msgs, 2)
	assert.Equal(t, "username.tooShort", msgs[0].TranslationKey())
	assert.Equal(t, "username.taken", msgs[1].TranslationKey())
}

func TestAsyncRuleOutcomesFollowRegistrationOrder(t *testing.T) {
	p := pipeline.New[string]().
		AddAsyncRule(func(context.Context, string) outcome.Outcome {
			return outcome.Error(errReserved, "first")
		}).
		AddAsyncRule(func(context.Context, string) outcome.Outcome {
			return outcome.Error(errReserved, "second")
		})

	out := p.ValidateCtx(context.Background(), "x")
	msgs := out.Messages()
	assert.Len(t, msgs, 2)
	assert.Equal(t, []string{"first"}, msgs[0].Parameters())
	assert.Equal(t, []string{"second"}, msgs[1].Parameters())
}

func TestValidateWithAsyncRulesRegistered(t *testing.T) {
	p := pipeline.New[int]().
		AddAsyncRule(func(_ context.Context, v int) outcome.Outcome {
			if v < 0 {
				return outcome.Error(errTooShort, 0)
			}
			return outcome.Ok()
		})

	assert.Equal(t, 7, p.Validate(7).MustValue())
	assert.True(t, p.Validate(-1).IsFailure())
}

func TestEmptyPipelineSucceeds(t *testing.T) {
	out := pipeline.New[int]().Validate(5)
	assert.Equal(t, 5, out.MustValue())
}
