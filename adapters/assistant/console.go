package assistant

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"
)

const systemPrompt = "You are an operations assistant for a grocery delivery backend. " +
	"Use the tools provided to you to check the payment, database and service worker status, " +
	"and answer briefly."

// Console is an interactive chat where Claude can call the backend's MCP
// diagnostics tools.
type Console struct {
	mcpClient *client.Client
	claude    anthropic.Client
	model     anthropic.Model
	timeout   time.Duration

	in  *bufio.Reader
	out io.Writer
	log logrus.FieldLogger

	tools []mcp.Tool
}

func NewConsole(mcpClient *client.Client, claude anthropic.Client, in io.Reader, out io.Writer, log logrus.FieldLogger) *Console {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Console{
		mcpClient: mcpClient,
		claude:    claude,
		model:     anthropic.ModelClaude3_7SonnetLatest,
		timeout:   30 * time.Second,
		in:        bufio.NewReader(in),
		out:       out,
		log:       log,
	}
}

// Connect opens a streamable HTTP session to the diagnostics endpoint.
func Connect(ctx context.Context, mcpURL string) (*client.Client, *mcp.InitializeResult, error) {
	httpTransport, err := transport.NewStreamableHTTP(mcpURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create HTTP transport: %w", err)
	}

	mcpClient := client.NewClient(httpTransport)
	if err := mcpClient.Start(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to start client: %w", err)
	}

	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcp.Implementation{
		Name:    "grocera-ops",
		Version: "1.0.0",
	}
	initRequest.Params.Capabilities = mcp.ClientCapabilities{}

	serverInfo, err := mcpClient.Initialize(ctx, initRequest)
	if err != nil {
		mcpClient.Close()
		return nil, nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return mcpClient, serverInfo, nil
}

// LoadTools fetches the tool list from the MCP server.
func (c *Console) LoadTools(ctx context.Context) error {
	result, err := c.mcpClient.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return fmt.Errorf("failed to list tools: %w", err)
	}
	c.tools = result.Tools
	c.log.Infof("Server has %d tools available", len(c.tools))
	for i, tool := range c.tools {
		c.log.Debugf("  %d. %s - %s", i+1, tool.Name, tool.Description)
	}
	return nil
}

// Run starts the conversation with prompt and keeps reading user input until
// "exit" or end of input.
func (c *Console) Run(ctx context.Context, prompt string) error {
	messages := []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
	}

	for {
		reply, toolResults, err := c.turn(ctx, messages)
		if err != nil {
			return err
		}
		// The API rejects assistant turns without content.
		if len(reply.Content) > 0 {
			messages = append(messages, reply)
		}

		// Tool results go straight back so Claude can finish its answer.
		if len(toolResults) > 0 {
			userMessage := anthropic.MessageParam{
				Role:    anthropic.MessageParamRoleUser,
				Content: toolResults,
			}
			messages = append(messages, userMessage)
			continue
		}

		userInput, ok := c.readInput()
		if !ok {
			return nil
		}
		messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(userInput)))
	}
}

// readInput prompts until the user types something. It returns false on
// "exit" or once the input is exhausted.
func (c *Console) readInput() (string, bool) {
	for {
		fmt.Fprint(c.out, "> ")
		text, err := c.in.ReadString('\n')
		userInput := strings.TrimSpace(text)
		switch {
		case userInput == "exit":
			return "", false
		case userInput != "":
			// A last line without a newline is still sent; the next read ends the chat.
			return userInput, true
		case err != nil:
			return "", false
		}
	}
}

func (c *Console) turn(ctx context.Context, messages []anthropic.MessageParam) (anthropic.MessageParam, []anthropic.ContentBlockParamUnion, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := c.claude.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		Messages:  messages,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Tools: ConvertTools(c.tools),
	})
	if err != nil {
		return anthropic.MessageParam{}, nil, fmt.Errorf("failed to send message: %w", err)
	}

	reply := anthropic.MessageParam{
		Role:    anthropic.MessageParamRoleAssistant,
		Content: []anthropic.ContentBlockParamUnion{},
	}
	var toolResults []anthropic.ContentBlockParamUnion
	for _, content := range response.Content {
		switch content.Type {
		case "tool_use":
			reply.Content = append(reply.Content, anthropic.ContentBlockParamUnion{
				OfToolUse: &anthropic.ToolUseBlockParam{
					ID:    content.ID,
					Name:  content.Name,
					Input: content.Input,
				},
			})
			text, isError := c.callTool(ctx, content.Name, content.Input)
			result := anthropic.ToolResultBlockParam{
				ToolUseID: content.ID,
				Content: []anthropic.ToolResultBlockParamContentUnion{
					{OfText: &anthropic.TextBlockParam{Text: text}},
				},
			}
			if isError {
				result.IsError = anthropic.Bool(true)
			}
			toolResults = append(toolResults, anthropic.ContentBlockParamUnion{OfToolResult: &result})
		case "text":
			fmt.Fprintln(c.out, content.Text)
			reply.Content = append(reply.Content, anthropic.ContentBlockParamUnion{
				OfText: &anthropic.TextBlockParam{Text: content.Text},
			})
		}
	}
	return reply, toolResults, nil
}

// callTool runs a tool on the MCP server and flattens its text content.
func (c *Console) callTool(ctx context.Context, name string, input []byte) (string, bool) {
	c.log.Infof("Tool use: %s %s", name, string(input))

	var arguments map[string]any
	if len(input) > 0 {
		if err := json.Unmarshal(input, &arguments); err != nil {
			return fmt.Sprintf("invalid tool input: %v", err), true
		}
	}

	request := mcp.CallToolRequest{}
	request.Params.Name = name
	if arguments != nil {
		request.Params.Arguments = arguments
	}

	result, err := c.mcpClient.CallTool(ctx, request)
	if err != nil {
		c.log.Warnf("Error calling tool %s: %v", name, err)
		return fmt.Sprintf("tool call failed: %v", err), true
	}

	var parts []string
	for _, content := range result.Content {
		if text, ok := mcp.AsTextContent(content); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n"), result.IsError
}

// ConvertTools maps MCP tool definitions onto Anthropic tool params.
func ConvertTools(mcpTools []mcp.Tool) []anthropic.ToolUnionParam {
	tools := make([]anthropic.ToolUnionParam, len(mcpTools))
	for i, mcpTool := range mcpTools {
		tools[i] = anthropic.ToolUnionParam{
			OfTool: &anthropic.ToolParam{
				Name:        mcpTool.Name,
				Description: anthropic.String(mcpTool.Description),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: mcpTool.InputSchema.Properties,
					Required:   mcpTool.InputSchema.Required,
				},
			},
		}
	}
	return tools
}
