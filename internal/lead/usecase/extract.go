package usecase

// extractID digs the record id out of a raw CRM payload. The MCP server
// returns either a flat {"id": ...} or a wrapped {"contact": {"id": ...}}
// depending on the tool, so both shapes are accepted.
func extractID(data map[string]any, wrapper string) string {
	if data == nil {
		return ""
	}
	if id, ok := data["id"].(string); ok {
		return id
	}
	if inner, ok := data[wrapper].(map[string]any); ok {
		if id, ok := inner["id"].(string); ok {
			return id
		}
	}
	return ""
}

// firstPipeline returns the id of the first pipeline and its first
// stage from a get-pipelines payload.
func firstPipeline(data map[string]any) (pipelineID, stageID string) {
	pipelines, ok := data["pipelines"].([]any)
	if !ok || len(pipelines) == 0 {
		return "", ""
	}
	pipeline, ok := pipelines[0].(map[string]any)
	if !ok {
		return "", ""
	}
	pipelineID, _ = pipeline["id"].(string)

	if stages, ok := pipeline["stages"].([]any); ok && len(stages) > 0 {
		if stage, ok := stages[0].(map[string]any); ok {
			stageID, _ = stage["id"].(string)
		}
	}
	return pipelineID, stageID
}

// firstConversation returns the id of the first conversation in a
// search-conversation payload.
func firstConversation(data map[string]any) string {
	conversations, ok := data["conversations"].([]any)
	if !ok || len(conversations) == 0 {
		return ""
	}
	conversation, ok := conversations[0].(map[string]any)
	if !ok {
		return ""
	}
	id, _ := conversation["id"].(string)
	return id
}
