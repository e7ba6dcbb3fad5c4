package progress

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abhisek/ailearn/internal/profile"
)

func TestDecodeUnversionedEnvelope(t *testing.T) {
	blob := `{
	  "state": {
	    "learningStyle": null,
	    "technicalLevel": "beginner",
	    "mentalState": "tired",
	    "goal": "",
	    "selectedTopic": "excel",
	    "completedLessons": ["excel-intro-1"],
	    "totalPoints": 10,
	    "hasCompletedOnboarding": true,
	    "lessonMastery": {"excel-intro-1": 87.6},
	    "adaptationHistory": [
	      {"timestamp": "2024-05-01T10:00:00.000Z", "adaptationType": "simplify", "reason": "cansado"}
	    ]
	  },
	  "version": 0
	}`

	st, err := Decode([]byte(blob))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if st.SchemaVersion != SchemaVersion {
		t.Errorf("SchemaVersion = %d, want %d", st.SchemaVersion, SchemaVersion)
	}
	if st.LearningStyle != profile.StyleUnset || st.TechnicalLevel != profile.LevelBeginner || st.MentalState != profile.StateTired {
		t.Errorf("profile fields = %q/%q/%q", st.LearningStyle, st.TechnicalLevel, st.MentalState)
	}
	if st.Mastery("excel-intro-1") != 88 {
		t.Errorf("mastery = %d, want 88", st.Mastery("excel-intro-1"))
	}
	if st.PreferredDuration != profile.DefaultPreferredDuration || st.CognitiveLoad != profile.LoadMedium {
		t.Errorf("missing fields not defaulted: duration %d, load %q", st.PreferredDuration, st.CognitiveLoad)
	}
	if st.AdaptationHistory.Len() != 1 {
		t.Errorf("history len = %d, want 1", st.AdaptationHistory.Len())
	}
	if diff := cmp.Diff([]string{"excel-intro-1"}, st.CompletedLessons); diff != "" {
		t.Errorf("completed mismatch (-want +got):\n%s", diff)
	}
	if st.Reflections == nil || st.TopicLevels == nil {
		t.Error("missing collections decoded as nil")
	}
}

func TestDecodeBareUnversionedState(t *testing.T) {
	st, err := Decode([]byte(`{"totalPoints": 30, "currentStreak": 2}`))
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalPoints != 30 || st.CurrentStreak != 2 || st.SelectedTopic != DefaultTopic {
		t.Errorf("decoded = %+v", st)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want error
	}{
		{"not json", `{{`, ErrInvalidState},
		{"not an object", `[1, 2]`, ErrInvalidState},
		{"future version", `{"schemaVersion": 2}`, ErrUnsupportedVersion},
		{"version is a string", `{"schemaVersion": "1"}`, ErrInvalidState},
		{"unknown mental state", `{"schemaVersion": 1, "mentalState": "sleepy"}`, ErrInvalidState},
		{"mastery out of range", `{"schemaVersion": 1, "lessonMastery": {"a": 150}}`, ErrInvalidState},
		{"negative counter", `{"schemaVersion": 1, "recentErrors": -1}`, ErrInvalidState},
		{"null list", `{"schemaVersion": 1, "completedLessons": null}`, ErrInvalidState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.blob))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEncodeDecodeInitial(t *testing.T) {
	data, err := Encode(Initial())
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode(Encode(Initial)): %v", err)
	}
	if diff := cmp.Diff(Initial(), got, cmp.AllowUnexported(History{})); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	var zero State
	data, err = Encode(zero)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(data); err == nil {
		t.Error("zero state with empty mental state should not validate")
	}
}
