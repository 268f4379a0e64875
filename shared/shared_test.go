package shared_test

import (
	"reflect"
	"testing"

	"hotel/shared"
)

func TestTransformFields(t *testing.T) {
	type testStruct struct {
		Floor    *int    `dynamodbav:"floor"`
		HasView  *bool   `dynamodbav:"hasView"`
		Status   *string `dynamodbav:"status"`
		Capacity *int    `dynamodbav:"capacity"`
		Ignored  *string `dynamodbav:"-"`
		NoTag    *string
	}

	tests := []struct {
		name     string
		data     testStruct
		expected map[string]any
	}{
		{
			name: "all fields populated",
			data: testStruct{
				Floor:    intPtr(5),
				HasView:  boolPtr(true),
				Status:   stringPtr("occupied"),
				Capacity: intPtr(4),
			},
			expected: map[string]any{
				"floor":    5,
				"hasView":  true,
				"status":   "occupied",
				"capacity": 4,
			},
		},
		{
			name:     "no fields populated",
			data:     testStruct{},
			expected: map[string]any{},
		},
		{
			name: "partial fields keep only provided values",
			data: testStruct{
				Floor: intPtr(2),
			},
			expected: map[string]any{
				"floor": 2,
			},
		},
		{
			name: "false and zero-adjacent values survive through pointers",
			data: testStruct{
				HasView:  boolPtr(false),
				Capacity: intPtr(1),
			},
			expected: map[string]any{
				"hasView":  false,
				"capacity": 1,
			},
		},
		{
			name: "untagged and dash-tagged fields are never included",
			data: testStruct{
				Floor:   intPtr(3),
				Ignored: stringPtr("ignored"),
				NoTag:   stringPtr("ignored"),
			},
			expected: map[string]any{
				"floor": 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, result)
			}
		})
	}
}

func TestTransformFieldsValueFields(t *testing.T) {
	type valueStruct struct {
		Name  string `dynamodbav:"name"`
		Count int    `dynamodbav:"count"`
	}

	result := shared.TransformFields(valueStruct{Name: "101"})

	expected := map[string]any{"name": "101"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected zero value fields to be skipped, got %+v", result)
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "single part",
			parts:    []string{"limiter"},
			expected: "limiter",
		},
		{
			name:     "multiple parts",
			parts:    []string{"limiter", "10.0.0.1", "curl/8.0"},
			expected: "limiter:10.0.0.1:curl/8.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.parts...); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}
