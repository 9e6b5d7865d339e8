package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/importworks/hts-helpers/internal/calculator"
	"github.com/importworks/hts-helpers/internal/classify"
	"github.com/importworks/hts-helpers/internal/remedy"

	"github.com/mark3labs/mcp-go/mcp"
)

// maxLookupResults caps the record count returned to tool callers; agents
// only need the top of the schedule slice.
const maxLookupResults = 15

// registerTools registers the callable tariff tools
func (s *Server) registerTools() {
	lookupTool := mcp.NewTool("lookup_hts_code",
		mcp.WithDescription("Search the USITC Harmonized Tariff Schedule database for HTS code details including duty rates, descriptions, and special provisions. Use this to validate HTS codes found in trade documents."),
		mcp.WithString("keyword",
			mcp.Required(),
			mcp.Description("HTS code or product keyword to search for in the USITC database"),
		),
	)
	s.mcpServer.AddTool(lookupTool, s.handleLookupHtsCode)

	remediesTool := mcp.NewTool("check_trade_remedies",
		mcp.WithDescription("Check if a product from a specific country of origin is subject to additional trade remedies such as Section 301 tariffs (China), Section 232 tariffs (steel/aluminum), or AD/CVD duties. Returns all applicable additional duties."),
		mcp.WithString("countryOfOrigin",
			mcp.Required(),
			mcp.Description("Two-letter country code, e.g. CN for China, VN for Vietnam"),
		),
		mcp.WithString("htsCode",
			mcp.Required(),
			mcp.Description("The 8-10 digit HTS code to check"),
		),
		mcp.WithString("productDescription",
			mcp.Description("Brief product description for context"),
		),
	)
	s.mcpServer.AddTool(remediesTool, s.handleCheckTradeRemedies)

	dutiesTool := mcp.NewTool("calculate_expected_duties",
		mcp.WithDescription("Calculate the expected duties and fees for a U.S. import transaction. Returns a complete breakdown of general duty, Section 301/232, MPF (Merchandise Processing Fee), HMF (Harbor Maintenance Fee), and total landed cost."),
		mcp.WithNumber("enteredValue",
			mcp.Required(),
			mcp.Description("Total entered value in USD (typically CIF value)"),
		),
		mcp.WithNumber("generalDutyRatePercent",
			mcp.Required(),
			mcp.Description("General duty rate as a percentage, e.g. 16.5 for 16.5%"),
		),
		mcp.WithNumber("section301RatePercent",
			mcp.Description("Section 301 additional duty rate as a percentage"),
		),
		mcp.WithNumber("section232RatePercent",
			mcp.Description("Section 232 additional duty rate as a percentage"),
		),
		mcp.WithNumber("adCvdRatePercent",
			mcp.Description("AD/CVD (antidumping/countervailing) duty rate"),
		),
		mcp.WithString("shippingMethod",
			mcp.Required(),
			mcp.Enum(calculator.MethodOcean, calculator.MethodAir, calculator.MethodLand),
			mcp.Description("Mode of transport; HMF only applies to ocean shipments"),
		),
	)
	s.mcpServer.AddTool(dutiesTool, s.handleCalculateDuties)

	classifyTool := mcp.NewTool("classify_product",
		mcp.WithDescription("Classify a product description under the U.S. Harmonized Tariff Schedule and return the best-match HTS code with ranked alternatives, confidence, and applicable trade remedies."),
		mcp.WithString("productDescription",
			mcp.Required(),
			mcp.Description("Free-text product description"),
		),
		mcp.WithString("countryOfOrigin",
			mcp.Required(),
			mcp.Description("Two-letter country of origin code"),
		),
	)
	s.mcpServer.AddTool(classifyTool, s.handleClassifyProduct)
}

func (s *Server) handleLookupHtsCode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keyword := request.GetString("keyword", "")
	if keyword == "" {
		return mcp.NewToolResultError("keyword parameter required"), nil
	}

	records, err := s.searcher.Search(ctx, keyword)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("tariff search failed: %v", err)), nil
	}

	candidates := classify.ResolveRates(records)
	if len(candidates) > maxLookupResults {
		candidates = candidates[:maxLookupResults]
	}

	return jsonResult(map[string]interface{}{
		"resultCount": len(records),
		"results":     candidates,
	})
}

func (s *Server) handleCheckTradeRemedies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	country := request.GetString("countryOfOrigin", "")
	htsCode := request.GetString("htsCode", "")
	if country == "" || htsCode == "" {
		return mcp.NewToolResultError("countryOfOrigin and htsCode parameters required"), nil
	}
	description := request.GetString("productDescription", "")

	return jsonResult(remedy.Resolve(country, htsCode, description))
}

func (s *Server) handleCalculateDuties(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	method := request.GetString("shippingMethod", "")
	if method == "" {
		return mcp.NewToolResultError("shippingMethod parameter required"), nil
	}

	breakdown, err := calculator.Calculate(calculator.Params{
		EnteredValue:           request.GetFloat("enteredValue", 0),
		GeneralDutyRatePercent: request.GetFloat("generalDutyRatePercent", 0),
		Section301RatePercent:  request.GetFloat("section301RatePercent", 0),
		Section232RatePercent:  request.GetFloat("section232RatePercent", 0),
		AdCvdRatePercent:       request.GetFloat("adCvdRatePercent", 0),
		ShippingMethod:         method,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(breakdown)
}

func (s *Server) handleClassifyProduct(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	description := request.GetString("productDescription", "")
	country := request.GetString("countryOfOrigin", "")
	if description == "" || country == "" {
		return mcp.NewToolResultError("productDescription and countryOfOrigin parameters required"), nil
	}

	result, err := s.classifier.Classify(ctx, description, country)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("classification failed: %v", err)), nil
	}

	return jsonResult(result)
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}
