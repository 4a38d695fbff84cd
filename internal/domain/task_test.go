package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeploymentResultJSON(t *testing.T) {
	zero := 0

	tests := map[string]struct {
		result DeploymentResult
		want   string
	}{
		"success keeps explicit round zero": {
			result: DeploymentResult{Status: StatusOK, Task: "t", Round: &zero, RepoURL: "r", PagesURL: "p", Message: DeployedMessage},
			want:   `{"status":"ok","task":"t","round":0,"repo_url":"r","pages_url":"p","message":"App deployed successfully!"}`,
		},
		"error result carries only status and message": {
			result: ErrorResult("Invalid secret"),
			want:   `{"status":"error","message":"Invalid secret"}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := json.Marshal(tt.result)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}
