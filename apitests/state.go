package apitests

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

// SessionState is the mutable context shared by every test case in a run: the
// credentials obtained by login and the ids of resources created by earlier
// cases. Execution is strictly sequential, so the state has exactly one owner
// at a time and needs no locking. A fresh run starts with an empty state.
type SessionState struct {
	accessToken  ldvalue.OptionalString
	refreshToken ldvalue.OptionalString
	resources    map[string]string
}

func NewSessionState() *SessionState {
	return &SessionState{resources: make(map[string]string)}
}

// AccessToken implements client.TokenSource.
func (s *SessionState) AccessToken() ldvalue.OptionalString {
	return s.accessToken
}

func (s *SessionState) SetAccessToken(token string) {
	s.accessToken = ldvalue.NewOptionalString(token)
}

func (s *SessionState) RefreshToken() ldvalue.OptionalString {
	return s.refreshToken
}

func (s *SessionState) SetRefreshToken(token string) {
	s.refreshToken = ldvalue.NewOptionalString(token)
}

// WithAccessToken runs body with the access credential temporarily replaced -
// cleared or corrupted - so a case can probe unauthenticated behavior. The
// prior value is restored on every exit path, including a panic escaping body.
func (s *SessionState) WithAccessToken(override ldvalue.OptionalString, body func()) {
	previous := s.accessToken
	s.accessToken = override
	defer func() {
		s.accessToken = previous
	}()
	body()
}

// RememberResource records the id of a resource created by a test case under
// a logical name, for consumption by later cases in the same lifecycle chain.
func (s *SessionState) RememberResource(name, id string) {
	s.resources[name] = id
}

// Resource returns the remembered id for a logical name. An undefined result
// means no earlier case created the resource; callers translate that into a
// skip, not a failure.
func (s *SessionState) Resource(name string) ldvalue.OptionalString {
	if id, ok := s.resources[name]; ok {
		return ldvalue.NewOptionalString(id)
	}
	return ldvalue.OptionalString{}
}

func (s *SessionState) ForgetResource(name string) {
	delete(s.resources, name)
}
