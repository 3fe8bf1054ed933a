package osutils

import (
	"os"
	"reflect"
	"testing"
)

func Test_TransformedEnv(t *testing.T) {
	I := string(os.PathListSeparator)
	tests := []struct {
		name    string
		current []string
		updates map[string]string
		want    []string
	}{
		{
			"Simple append",
			[]string{"A=1", "B=2"},
			map[string]string{"C": "3"},
			[]string{"A=1", "B=2", "C=3"},
		},
		{
			"Simple replace",
			[]string{"A=1", "B=2"},
			map[string]string{"B": "20"},
			[]string{"A=1", "B=20"},
		},
		{
			"Path prepend",
			[]string{"PATH=A" + I + "B"},
			map[string]string{"PATH": "C"},
			[]string{"PATH=C" + I + "A" + I + "B"},
		},
		{
			"Path prepend with mismatched casing",
			[]string{"Path=A" + I + "B"},
			map[string]string{"PATH": "C"},
			[]string{"PATH=C" + I + "A" + I + "B"},
		},
		{
			"Path set when absent",
			[]string{"A=1"},
			map[string]string{"PATH": "C"},
			[]string{"A=1", "PATH=C"},
		},
		{
			"Loader path prepend",
			[]string{"LD_LIBRARY_PATH=/usr/lib"},
			map[string]string{"LD_LIBRARY_PATH": "/opt/lib"},
			[]string{"LD_LIBRARY_PATH=/opt/lib" + I + "/usr/lib"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TransformedEnv(tt.current, tt.updates); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TransformedEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_TransformedEnvDoesNotMutateInput(t *testing.T) {
	current := []string{"PATH=A"}
	TransformedEnv(current, map[string]string{"PATH": "B"})
	if current[0] != "PATH=A" {
		t.Errorf("input environment was mutated: %v", current)
	}
}

func Test_PrunedEnv(t *testing.T) {
	tests := []struct {
		name    string
		current []string
		prune   []string
		want    []string
	}{
		{
			"Drop one",
			[]string{"A=1", "PYTHONHOME=/usr", "B=2"},
			[]string{"PYTHONHOME"},
			[]string{"A=1", "B=2"},
		},
		{
			"Drop with mismatched casing",
			[]string{"PythonHome=/usr", "B=2"},
			[]string{"PYTHONHOME"},
			[]string{"B=2"},
		},
		{
			"Nothing to drop",
			[]string{"A=1"},
			[]string{"PYTHONHOME"},
			[]string{"A=1"},
		},
		{
			"Value is not a name match",
			[]string{"A=PYTHONHOME=1"},
			[]string{"PYTHONHOME"},
			[]string{"A=PYTHONHOME=1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrunedEnv(tt.current, tt.prune...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PrunedEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_EnvSliceToMap(t *testing.T) {
	got := EnvSliceToMap([]string{"A=1", "B=2=3", "MALFORMED", "A=10"})
	want := map[string]string{"A": "10", "B": "2=3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EnvSliceToMap() = %v, want %v", got, want)
	}
}
