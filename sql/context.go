// Copyright 2022-2023 FrescoDB, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sql

import (
	"context"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
)

// Context carries a standard context, the session, a tracer and a
// logger through every interpreter call.
type Context struct {
	context.Context
	Session
	tracer opentracing.Tracer
	logger *logrus.Entry
}

// ContextOption configures a Context during construction.
type ContextOption func(*Context)

// WithTracer sets the tracer spans are reported to.
func WithTracer(t opentracing.Tracer) ContextOption {
	return func(ctx *Context) {
		ctx.tracer = t
	}
}

// WithSession sets the session of the context.
func WithSession(s Session) ContextOption {
	return func(ctx *Context) {
		ctx.Session = s
	}
}

// WithLogger sets the logger of the context.
func WithLogger(l *logrus.Entry) ContextOption {
	return func(ctx *Context) {
		ctx.logger = l
	}
}

// NewContext creates a Context from a parent context.Context.
func NewContext(ctx context.Context, opts ...ContextOption) *Context {
	c := &Context{
		Context: ctx,
		tracer:  opentracing.NoopTracer{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.Session == nil {
		c.Session = NewBaseSession()
	}

	if c.logger == nil {
		c.logger = logrus.StandardLogger().WithField("session", c.Session.ID())
	}

	return c
}

// NewEmptyContext returns a default context with a fresh session. Meant
// for tests and standalone evaluations.
func NewEmptyContext() *Context {
	return NewContext(context.TODO())
}

// Span creates a new tracing span as a child of the current one, along
// with a context carrying it. The caller must Finish the span.
func (ctx *Context) Span(
	opName string,
	opts ...opentracing.StartSpanOption,
) (opentracing.Span, *Context) {
	parent := opentracing.SpanFromContext(ctx.Context)
	if parent != nil {
		opts = append(opts, opentracing.ChildOf(parent.Context()))
	}

	span := ctx.tracer.StartSpan(opName, opts...)
	inner := opentracing.ContextWithSpan(ctx.Context, span)

	nctx := *ctx
	nctx.Context = inner
	return span, &nctx
}

// Logger returns the logger bound to this context.
func (ctx *Context) Logger() *logrus.Entry { return ctx.logger }
