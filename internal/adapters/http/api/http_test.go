package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mergington/activities/internal/adapters/http/api"
	registry "github.com/mergington/activities/internal/adapters/registry"
	service "github.com/mergington/activities/internal/app"
	"github.com/mergington/activities/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

// newTestMux wires a freshly seeded service behind the API routes. Each
// Convey branch re-runs this setup, so tests never share registry state.
func newTestMux() *http.ServeMux {
	svc := service.New()
	if err := svc.Start(context.Background()); err != nil {
		panic(err)
	}
	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(context.Background(), mux)
	return mux
}

func do(mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

type activityPayload struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func decodeActivities(w *httptest.ResponseRecorder) map[string]activityPayload {
	out := make(map[string]activityPayload)
	So(json.Unmarshal(w.Body.Bytes(), &out), ShouldBeNil)
	return out
}

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestServerRegister(t *testing.T) {
	Convey("Given registered API routes", t, func() {
		mux := newTestMux()

		Convey("Then the health endpoint should be accessible", func() {
			So(do(mux, "GET", "/healthz").Code, ShouldEqual, http.StatusOK)
		})

		Convey("And the stats endpoint should report seeded counts", func() {
			w := do(mux, "GET", "/stats")
			So(w.Code, ShouldEqual, http.StatusOK)

			var stats map[string]any
			So(json.Unmarshal(w.Body.Bytes(), &stats), ShouldBeNil)
			So(stats["activities"], ShouldEqual, 9)
			So(stats["participants"], ShouldEqual, 18)
		})

		Convey("And unknown paths should fall through to 404", func() {
			So(do(mux, "GET", "/unknown").Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("And every response should carry a request id", func() {
			w := do(mux, "GET", "/activities")
			_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
			So(err, ShouldBeNil)
		})

		Convey("And a caller-supplied request id should be echoed", func() {
			req := httptest.NewRequest("GET", "/activities", nil)
			req.Header.Set("X-Request-ID", "req-42")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Header().Get("X-Request-ID"), ShouldEqual, "req-42")
		})
	})
}

func TestGetActivities(t *testing.T) {
	Convey("Given registered API routes", t, func() {
		mux := newTestMux()

		Convey("When listing activities", func() {
			w := do(mux, "GET", "/activities")

			Convey("Then the full seeded roster should be returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				data := decodeActivities(w)
				So(len(data), ShouldEqual, 9)
				So(data, ShouldContainKey, "Chess Club")
				So(data, ShouldContainKey, "Programming Class")
			})

			Convey("And each activity should carry its four fields", func() {
				chess := decodeActivities(w)["Chess Club"]
				So(chess.Description, ShouldNotBeEmpty)
				So(chess.Schedule, ShouldNotBeEmpty)
				So(chess.MaxParticipants, ShouldEqual, 12)
				So(chess.Participants, ShouldNotBeNil)
				So(len(chess.Participants), ShouldEqual, 2)
				So(chess.Participants, ShouldContain, "michael@mergington.edu")
			})

			Convey("And object keys should keep registry insertion order", func() {
				body := w.Body.String()
				So(strings.Index(body, `"Chess Club"`), ShouldBeLessThan, strings.Index(body, `"Programming Class"`))
				So(strings.Index(body, `"Programming Class"`), ShouldBeLessThan, strings.Index(body, `"Science Olympiad"`))
			})
		})

		Convey("When using the wrong method", func() {
			So(do(mux, "POST", "/activities").Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestSignup(t *testing.T) {
	Convey("Given registered API routes", t, func() {
		mux := newTestMux()

		Convey("When signing up a new student", func() {
			w := do(mux, "POST", "/activities/Chess%20Club/signup?email=newstudent@mergington.edu")

			Convey("Then the signup should succeed with a message", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var resp map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["message"], ShouldContainSubstring, "newstudent@mergington.edu")
				So(resp["message"], ShouldContainSubstring, "Chess Club")
			})

			Convey("And the student should appear in the roster exactly once", func() {
				data := decodeActivities(do(mux, "GET", "/activities"))
				count := 0
				for _, p := range data["Chess Club"].Participants {
					if p == "newstudent@mergington.edu" {
						count++
					}
				}
				So(count, ShouldEqual, 1)
			})
		})

		Convey("When signing up the same student twice", func() {
			first := do(mux, "POST", "/activities/Chess%20Club/signup?email=test@mergington.edu")
			So(first.Code, ShouldEqual, http.StatusOK)

			w := do(mux, "POST", "/activities/Chess%20Club/signup?email=test@mergington.edu")

			Convey("Then the duplicate should be rejected with 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var resp map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["detail"], ShouldEqual, "Student already signed up for this activity")
			})

			Convey("And the participant count should be unchanged", func() {
				data := decodeActivities(do(mux, "GET", "/activities"))
				So(len(data["Chess Club"].Participants), ShouldEqual, 3)
			})
		})

		Convey("When signing up for an unknown activity", func() {
			w := do(mux, "POST", "/activities/Nonexistent%20Club/signup?email=student@mergington.edu")

			Convey("Then the request should fail with 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)

				var resp map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["detail"], ShouldEqual, "Activity not found")
			})
		})

		Convey("When the email parameter is missing", func() {
			w := do(mux, "POST", "/activities/Chess%20Club/signup")

			Convey("Then the request should fail with 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var resp map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["detail"], ShouldEqual, "Email is required")
			})
		})

		Convey("When the email itself is percent-encoded", func() {
			w := do(mux, "POST", "/activities/Chess%20Club/signup?email=encoded%40mergington.edu")

			Convey("Then it should resolve to the decoded activity and email", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				data := decodeActivities(do(mux, "GET", "/activities"))
				So(data["Chess Club"].Participants, ShouldContain, "encoded@mergington.edu")
			})
		})

		Convey("When using the wrong method", func() {
			So(do(mux, "GET", "/activities/Chess%20Club/signup?email=x@mergington.edu").Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestRemoveParticipant(t *testing.T) {
	Convey("Given registered API routes", t, func() {
		mux := newTestMux()

		Convey("When removing an enrolled student", func() {
			w := do(mux, "DELETE", "/activities/Chess%20Club/participants/michael@mergington.edu")

			Convey("Then the removal should succeed with a message", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var resp map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["message"], ShouldContainSubstring, "michael@mergington.edu")
				So(resp["message"], ShouldContainSubstring, "Chess Club")
			})

			Convey("And the student should disappear from the roster", func() {
				data := decodeActivities(do(mux, "GET", "/activities"))
				So(data["Chess Club"].Participants, ShouldNotContain, "michael@mergington.edu")
			})
		})

		Convey("When removing from an unknown activity", func() {
			w := do(mux, "DELETE", "/activities/Nonexistent%20Club/participants/student@mergington.edu")

			Convey("Then the request should fail with 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)

				var resp map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["detail"], ShouldEqual, "Activity not found")
			})
		})

		Convey("When removing a student who never signed up", func() {
			w := do(mux, "DELETE", "/activities/Chess%20Club/participants/notregistered@mergington.edu")

			Convey("Then the request should fail with 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)

				var resp map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["detail"], ShouldEqual, "Participant not found in this activity")
			})
		})

		Convey("When the path segments are percent-encoded", func() {
			w := do(mux, "DELETE", "/activities/Chess%20Club/participants/michael%40mergington.edu")

			Convey("Then they should resolve to their decoded forms", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
			})
		})

		Convey("When using the wrong method", func() {
			So(do(mux, "GET", "/activities/Chess%20Club/participants/michael@mergington.edu").Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestSignupRemoveWorkflow(t *testing.T) {
	Convey("Given registered API routes", t, func() {
		mux := newTestMux()

		Convey("When signing up and then removing the same student", func() {
			before := len(decodeActivities(do(mux, "GET", "/activities"))["Chess Club"].Participants)

			So(do(mux, "POST", "/activities/Chess%20Club/signup?email=round@mergington.edu").Code, ShouldEqual, http.StatusOK)

			during := decodeActivities(do(mux, "GET", "/activities"))["Chess Club"].Participants
			So(len(during), ShouldEqual, before+1)
			So(during, ShouldContain, "round@mergington.edu")

			So(do(mux, "DELETE", "/activities/Chess%20Club/participants/round@mergington.edu").Code, ShouldEqual, http.StatusOK)

			Convey("Then the roster should return to its prior size", func() {
				after := decodeActivities(do(mux, "GET", "/activities"))["Chess Club"].Participants
				So(len(after), ShouldEqual, before)
				So(after, ShouldNotContain, "round@mergington.edu")
			})
		})

		Convey("When one student joins several activities", func() {
			email := "multiactivity@mergington.edu"
			joined := []string{"Chess Club", "Programming Class", "Drama Club"}

			for _, name := range joined {
				w := do(mux, "POST", fmt.Sprintf("/activities/%s/signup?email=%s", url.PathEscape(name), email))
				So(w.Code, ShouldEqual, http.StatusOK)
			}

			Convey("Then every roster should list the student", func() {
				data := decodeActivities(do(mux, "GET", "/activities"))
				for _, name := range joined {
					So(data[name].Participants, ShouldContain, email)
				}
			})
		})
	})
}

// failingDeps exercises the handlers' fallback error branch.
type failingDeps struct{}

func (failingDeps) List(context.Context) []registry.Entry        { return nil }
func (failingDeps) Signup(context.Context, string, string) error { return fmt.Errorf("boom") }
func (failingDeps) Remove(context.Context, string, string) error { return fmt.Errorf("boom") }
func (failingDeps) GetStats() map[string]interface{}             { return nil }

func TestHandlerInternalErrors(t *testing.T) {
	Convey("Given handlers over a failing backend", t, func() {
		mux := http.NewServeMux()
		api.NewServer(failingDeps{}, failingDeps{}).Register(context.Background(), mux)

		Convey("Then signup failures should map to 500", func() {
			w := do(mux, "POST", "/activities/Chess%20Club/signup?email=x@mergington.edu")
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
		})

		Convey("And removal failures should map to 500", func() {
			w := do(mux, "DELETE", "/activities/Chess%20Club/participants/x@mergington.edu")
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
		})
	})
}
