// Package ldapserver serves generated names over LDAP.
//
// Two subtrees are exposed below the base DN:
//
//	[algorithm=<a>,][maxlen=<n>,][minprob=<p>,][seed=<s>,]ou=names,<base>
//	cn=<ssh authorized key>,ou=identities,<base>
//
// A search on the first returns SizeLimit freshly generated names (one when
// no limit is given). A search on the second returns the name derived from
// the key, which is the same on every request.
package ldapserver

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"sync"

	"github.com/lor00x/goldap/message"
	ldap "github.com/vjeantet/ldapserver"

	"github.com/wyrdbound/wyrdbound-rng/internal/derived"
	"github.com/wyrdbound/wyrdbound-rng/internal/namegen"
)

const (
	// MaxSizeLimit caps the names returned by one search
	MaxSizeLimit = 100

	namesOU      = "ou=names"
	identitiesOU = "ou=identities"
)

var errBadDN = errors.New("malformed DN")

type LDAPServer struct {
	server   *ldap.Server
	addr     string
	baseDN   string
	gen      *namegen.Generator
	defaults namegen.GenerateOptions
	logger   *slog.Logger

	mu       sync.Mutex
	listener net.Listener
	ready    chan struct{}
}

// Option configures an LDAPServer
type Option func(*LDAPServer)

// WithBaseDN sets the directory suffix (default dc=wyrdbound)
func WithBaseDN(dn string) Option {
	return func(s *LDAPServer) { s.baseDN = strings.ToLower(dn) }
}

// WithDefaults sets the generation options used when a DN does not override them
func WithDefaults(opts namegen.GenerateOptions) Option {
	return func(s *LDAPServer) { s.defaults = opts }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *LDAPServer) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewServer(addr string, gen *namegen.Generator, opts ...Option) *LDAPServer {
	server := ldap.NewServer()

	s := &LDAPServer{
		server:   server,
		addr:     addr,
		baseDN:   "dc=wyrdbound",
		gen:      gen,
		defaults: namegen.GenerateOptions{MaxLen: 12, Algorithm: namegen.Simple},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		ready:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Register handlers for specific LDAP operations
	routes := ldap.NewRouteMux()
	routes.Bind(s.handleBind)
	routes.Search(s.handleSearch)
	server.Handle(routes)

	return s
}

// Only anonymous binds are accepted; the directory is public.
func (s *LDAPServer) handleBind(w ldap.ResponseWriter, m *ldap.Message) {
	bindReq := m.GetBindRequest()

	if string(bindReq.Name()) != "" {
		res := ldap.NewBindResponse(ldap.LDAPResultInvalidCredentials)
		res.SetDiagnosticMessage("only anonymous binds are supported")
		w.Write(res)
		return
	}

	w.Write(ldap.NewBindResponse(ldap.LDAPResultSuccess))
}

func (s *LDAPServer) handleSearch(w ldap.ResponseWriter, m *ldap.Message) {
	searchReq := m.GetSearchRequest()
	dn := strings.TrimSpace(string(searchReq.BaseObject()))
	lower := strings.ToLower(dn)

	var code int
	switch {
	case lower == namesOU+","+s.baseDN || strings.HasSuffix(lower, ","+namesOU+","+s.baseDN):
		code = s.searchNames(w, dn[:len(dn)-len(namesOU+","+s.baseDN)], int(searchReq.SizeLimit()))
	case strings.HasSuffix(lower, ","+identitiesOU+","+s.baseDN):
		code = s.searchIdentity(w, dn[:len(dn)-len(","+identitiesOU+","+s.baseDN)])
	default:
		code = ldap.LDAPResultNoSuchObject
	}

	w.Write(ldap.NewSearchResultDoneResponse(code))
}

func (s *LDAPServer) searchNames(w ldap.ResponseWriter, params string, sizeLimit int) int {
	opts, err := s.parseParams(strings.TrimSuffix(params, ","))
	if err != nil {
		s.logger.Info("rejected names search", slog.String("params", params), slog.Any("error", err))
		return ldap.LDAPResultInvalidDNSyntax
	}
	if sizeLimit <= 0 {
		sizeLimit = 1
	}
	if sizeLimit > MaxSizeLimit {
		sizeLimit = MaxSizeLimit
	}

	names, err := s.gen.Generate(sizeLimit, opts)
	if err != nil {
		s.logger.Warn("names search failed", slog.Any("error", err))
		if errors.Is(err, namegen.ErrGenerationExhausted) {
			return ldap.LDAPResultUnwillingToPerform
		}
		if errors.Is(err, namegen.ErrInvalidOptions) || errors.Is(err, namegen.ErrUnknownAlgorithm) {
			return ldap.LDAPResultInvalidDNSyntax
		}
		return ldap.LDAPResultOperationsError
	}

	for _, n := range names {
		w.Write(s.nameEntry(n))
	}
	return ldap.LDAPResultSuccess
}

func (s *LDAPServer) nameEntry(n namegen.GeneratedName) message.SearchResultEntry {
	e := ldap.NewSearchResultEntry(fmt.Sprintf("cn=%s,%s,%s", n.Name, namesOU, s.baseDN))
	e.AddAttribute("objectClass", message.AttributeValue("wyrdboundName"))
	e.AddAttribute("cn", message.AttributeValue(n.Name))
	e.AddAttribute("algorithm", message.AttributeValue(string(n.Algorithm)))
	e.AddAttribute("existsInCorpus", message.AttributeValue(strings.ToUpper(strconv.FormatBool(n.ExistsInCorpus))))
	addValues(&e, "syllable", n.Syllables)
	addValues(&e, "source", n.SourceNames)
	if n.Probability != nil {
		e.AddAttribute("probability", message.AttributeValue(strconv.FormatFloat(*n.Probability, 'g', -1, 64)))
	}
	return e
}

func (s *LDAPServer) searchIdentity(w ldap.ResponseWriter, rdn string) int {
	if !strings.HasPrefix(strings.ToLower(rdn), "cn=") {
		return ldap.LDAPResultInvalidDNSyntax
	}
	id, err := derived.FromAuthorizedKey(strings.TrimSpace(rdn[3:]))
	if err != nil {
		s.logger.Info("rejected identity search", slog.Any("error", err))
		return ldap.LDAPResultInvalidDNSyntax
	}

	n, err := id.DisplayName(s.gen, s.defaults)
	if err != nil {
		s.logger.Warn("identity search failed", slog.String("fingerprint", id.Fingerprint()), slog.Any("error", err))
		return ldap.LDAPResultUnwillingToPerform
	}

	e := ldap.NewSearchResultEntry(fmt.Sprintf("uid=%s,%s,%s", id.Handle(), identitiesOU, s.baseDN))
	e.AddAttribute("objectClass", message.AttributeValue("wyrdboundIdentity"))
	e.AddAttribute("uid", message.AttributeValue(id.Handle()))
	e.AddAttribute("cn", message.AttributeValue(n.Name))
	e.AddAttribute("displayName", message.AttributeValue(n.Name))
	e.AddAttribute("fingerprint", message.AttributeValue(id.Fingerprint()))
	addValues(&e, "syllable", n.Syllables)
	w.Write(e)
	return ldap.LDAPResultSuccess
}

// parseParams reads generation overrides from the RDNs before ou=names
func (s *LDAPServer) parseParams(params string) (namegen.GenerateOptions, error) {
	opts := s.defaults
	if params == "" {
		return opts, nil
	}

	for _, rdn := range strings.Split(params, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(rdn), "=")
		if !ok {
			return opts, fmt.Errorf("%w: %q", errBadDN, rdn)
		}
		var err error
		switch strings.ToLower(key) {
		case "algorithm":
			opts.Algorithm, err = namegen.ParseAlgorithm(value)
		case "maxlen":
			opts.MaxLen, err = strconv.Atoi(value)
		case "minprob":
			var p float64
			if p, err = strconv.ParseFloat(value, 64); err == nil {
				opts.MinProbability = namegen.Threshold(p)
			}
		case "seed":
			opts.Seed, err = strconv.ParseInt(value, 10, 64)
		default:
			err = fmt.Errorf("%w: unknown attribute %q", errBadDN, key)
		}
		if err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func addValues(e *message.SearchResultEntry, name string, values []string) {
	if len(values) == 0 {
		return
	}
	vals := make([]message.AttributeValue, len(values))
	for i, v := range values {
		vals[i] = message.AttributeValue(v)
	}
	e.AddAttribute(message.AttributeDescription(name), vals...)
}

// Start listens and serves until Stop is called
func (s *LDAPServer) Start() error {
	return s.server.ListenAndServe(s.addr, func(srv *ldap.Server) {
		s.mu.Lock()
		s.listener = srv.Listener
		s.mu.Unlock()
		close(s.ready)
	})
}

// Ready is closed once the server is listening
func (s *LDAPServer) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the listening address, or the configured one before Start
func (s *LDAPServer) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Stop closes client connections and the listener
func (s *LDAPServer) Stop() {
	s.server.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		s.listener.Close()
	}
}
