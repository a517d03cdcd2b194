package selftypes

// Namespace tags which of the three disjoint identifier spaces a Name
// belongs to. Substitution, free-name analysis, and context lookup all
// dispatch on this tag rather than on any structural property of the
// identifier string.
type Namespace int

const (
	NamespaceTerm Namespace = iota
	NamespaceType
	NamespaceKind
)

func (ns Namespace) String() string {
	switch ns {
	case NamespaceTerm:
		return "term"
	case NamespaceType:
		return "type"
	case NamespaceKind:
		return "kind"
	default:
		panic("selftypes: invalid namespace")
	}
}

// Name is the single polymorphic carrier for term-names, type-names, and
// kind-names. Identity is by (Namespace, Ident) pair — two Names with the
// same Ident but different Namespace are unrelated, and substitution must
// never bridge them.
type Name struct {
	Namespace Namespace
	Ident     string
}

func (n Name) String() string { return n.Ident }

// TermName, TypeName, and KindName construct Names in each namespace. The
// grammar collaborator is expected to hand these out with globally unique
// Idents, since substitution here never α-renames to avoid a collision;
// nothing in this package enforces that uniqueness.
func TermName(ident string) Name { return Name{Namespace: NamespaceTerm, Ident: ident} }
func TypeName(ident string) Name { return Name{Namespace: NamespaceType, Ident: ident} }
func KindName(ident string) Name { return Name{Namespace: NamespaceKind, Ident: ident} }
