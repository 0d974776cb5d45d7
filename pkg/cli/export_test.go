package cli

var RenderSummary = renderSummary
