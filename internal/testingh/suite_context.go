package testingh

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"
)

const testTimeout = 10 * time.Second

type ContextSuite struct {
	suite.Suite

	Ctx       context.Context
	ctxCancel context.CancelFunc

	SuiteCtx       context.Context
	suiteCtxCancel context.CancelFunc
}

func (cs *ContextSuite) SetupSuite() {
	cs.SuiteCtx, cs.suiteCtxCancel = context.WithCancel(context.Background())
}

func (cs *ContextSuite) TearDownSuite() {
	cs.suiteCtxCancel()
}

func (cs *ContextSuite) SetupTest() {
	cs.Ctx, cs.ctxCancel = context.WithTimeout(cs.SuiteCtx, testTimeout)
}

func (cs *ContextSuite) TearDownTest() {
	cs.ctxCancel()
}
