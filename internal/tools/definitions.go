package tools

// RegisterAllTools registers all available tools with the registry.
// Registration order is the order clients see in tools/list.
func RegisterAllTools(r *Registry) {
	// listModels
	r.MustRegister(ToolDefinition{
		Name:        "listModels",
		Description: "List the models available to the configured API key",
		InputSchema: BuildSchema(map[string]any{}, nil),
	}, HandleListModels)

	// chatCompletion
	r.MustRegister(ToolDefinition{
		Name:        "chatCompletion",
		Description: "Generate a chat completion for a conversation (non-streaming)",
		InputSchema: BuildSchema(map[string]any{
			"model":       StringSchema("Model to use (defaults to the configured chat model)"),
			"messages":    ArraySchema("Ordered conversation messages", MessageSchema()),
			"temperature": NumberSchema("Sampling temperature (defaults to 0.7)"),
			"max_tokens":  NumberSchema("Maximum tokens to generate (defaults to 150)"),
		}, []string{"messages"}),
	}, HandleChatCompletion)

	// createEmbedding
	r.MustRegister(ToolDefinition{
		Name:        "createEmbedding",
		Description: "Generate an embedding for the given input and report its dimension count",
		InputSchema: BuildSchema(map[string]any{
			"model": StringSchema("Model to use (defaults to the configured embedding model)"),
			"input": OneOfSchema("Text to embed",
				StringSchema("Single input text"),
				ArraySchema("Multiple input texts", StringSchema("Input text")),
			),
		}, []string{"input"}),
	}, HandleCreateEmbedding)
}
