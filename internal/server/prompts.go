package server

import (
	"context"
	"fmt"

	"ngmcp/internal/content"
	"ngmcp/internal/registry"

	"github.com/mark3labs/mcp-go/mcp"
)

// PromptHandler matches mcp-go's prompt handler signature.
type PromptHandler func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error)

// PromptRegistry holds the prompt specs and handlers in listing order.
type PromptRegistry = registry.Registry[mcp.Prompt, PromptHandler]

type promptDef struct {
	prompt  mcp.Prompt
	handler PromptHandler
}

// defaultComponentFeatures is used when create_angular_component is called
// without a features argument.
const defaultComponentFeatures = "Basic component structure"

// newPromptRegistry registers the two prompts in their fixed listing order.
func newPromptRegistry(store *content.Store) (*PromptRegistry, error) {
	reg := registry.New[mcp.Prompt, PromptHandler]()
	defs := []promptDef{
		codeReviewPrompt(store),
		createComponentPrompt(store),
	}
	for _, def := range defs {
		if err := reg.Register(def.prompt.Name, def.prompt, def.handler); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// codeReviewPrompt expands into a single user message embedding the code
// under review together with the full guideline document.
func codeReviewPrompt(store *content.Store) promptDef {
	prompt := mcp.NewPrompt("angular_code_review",
		mcp.WithPromptDescription("Review Angular code against the development guidelines"),
		mcp.WithArgument("code",
			mcp.ArgumentDescription("The Angular code to review"),
			mcp.RequiredArgument(),
		),
	)

	handler := func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		code := request.Params.Arguments["code"]
		if code == "" {
			return nil, missingArgument("code")
		}

		text := fmt.Sprintf(
			"Please review the following Angular code:\n\n```typescript\n%s\n```\n\nAngular Guidelines:\n\n%s\n\nProvide specific feedback on how this code can better follow the guidelines.",
			code, store.Guidelines(),
		)

		return mcp.NewGetPromptResult(
			"Angular code review",
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
			},
		), nil
	}

	return promptDef{prompt: prompt, handler: handler}
}

// createComponentPrompt expands into a single user message asking for a new
// component built to the guidelines.
func createComponentPrompt(store *content.Store) promptDef {
	prompt := mcp.NewPrompt("create_angular_component",
		mcp.WithPromptDescription("Create a new Angular component following the development guidelines"),
		mcp.WithArgument("componentName",
			mcp.ArgumentDescription("Name of the component to create"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("features",
			mcp.ArgumentDescription("Features the component should have"),
		),
	)

	handler := func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		name := request.Params.Arguments["componentName"]
		if name == "" {
			return nil, missingArgument("componentName")
		}

		features := request.Params.Arguments["features"]
		if features == "" {
			features = defaultComponentFeatures
		}

		text := fmt.Sprintf(
			"Create an Angular component named %q following these guidelines:\n\n%s\n\nRequested features: %s",
			name, store.Guidelines(), features,
		)

		return mcp.NewGetPromptResult(
			"Create Angular component",
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
			},
		), nil
	}

	return promptDef{prompt: prompt, handler: handler}
}
