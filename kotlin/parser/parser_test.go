package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/ktparse/kotlin/lexer"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, entry Rule, src string) *Node {
	t.Helper()
	node, err := Parse(entry, lexer.Tokenize([]byte(src), "test.kt"), WithLogger(nil))
	require.NoError(t, err)
	require.NotNil(t, node)
	return node
}

func TestParseExpression(t *testing.T) {
	tests := []struct {
		input string
		kind  NodeKind
	}{
		{"42", KindIntegerConstant},
		{"1.5", KindFloatConstant},
		{"'c'", KindCharacterConstant},
		{"true", KindBooleanConstant},
		{"null", KindNull},
		{"x", KindReference},
		{"x + y", KindBinaryExpression},
		{"x * y + z", KindBinaryExpression},
		{"a && b || c", KindBinaryExpression},
		{"a ?: b", KindBinaryExpression},
		{"a..b", KindBinaryExpression},
		{"x in xs", KindBinaryExpression},
		{"x = 5", KindBinaryExpression},
		{"x += 1", KindBinaryExpression},
		{"a < b", KindBinaryExpression},
		{"-x", KindPrefixExpression},
		{"!x", KindPrefixExpression},
		{"!!x", KindPrefixExpression},
		{"x!!", KindPostfixExpression},
		{"x++", KindPostfixExpression},
		{"(x)", KindParenthesized},
		{"a.b", KindDotQualified},
		{"a?.b", KindSafeAccess},
		{"a.b()", KindDotQualified},
		{"super.foo()", KindDotQualified},
		{"f(1, 2)", KindCallExpression},
		{"f<Int>(1)", KindCallExpression},
		{"f { it }", KindCallExpression},
		{"f(name = 1, *rest)", KindCallExpression},
		{"arr[0]", KindArrayAccess},
		{"x as String", KindBinaryWithType},
		{"x as? String", KindBinaryWithType},
		{"x is String", KindIsExpression},
		{"x !is String", KindIsExpression},
		{"Foo::bar", KindCallableReference},
		{"::foo", KindCallableReference},
		{"{ x -> x }", KindLambdaExpression},
		{`"a$b${c}"`, KindStringTemplate},
		{"this", KindThis},
		{"this@Outer", KindThis},
		{"@Ann x", KindAnnotatedExpression},
		{"loop@ while (true) {}", KindLabeledExpression},
		{"if (a) b else c", KindIf},
		{"when (x) {\n1 -> a\nelse -> b\n}", KindWhen},
		{"try { a } catch (e: Exception) { b }", KindTry},
		{"for (x in xs) println(x)", KindFor},
		{"do { x++ } while (x < 10)", KindDoWhile},
		{"object : Runnable {}", KindObjectLiteral},
		{"return 1", KindReturn},
		{"throw e", KindThrow},
		{"break@loop", KindBreak},
		{"fun(x: Int) = x", KindFunction},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := ParseExpression(strings.NewReader(tt.input), WithLogger(nil))
			node := p.Finish()
			require.NoError(t, p.Err())
			if node.Kind != tt.kind {
				t.Errorf("got %v, want %v\n%s", node.Kind, tt.kind, node)
			}
		})
	}
}

func topLevelKinds(n *Node) []NodeKind {
	var kinds []NodeKind
	for _, child := range n.Children {
		if !child.IsToken() {
			kinds = append(kinds, child.Kind)
		}
	}
	return kinds
}

func TestParseFile(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kinds []NodeKind
	}{
		{"empty", "", nil},
		{"header", "package a.b\nimport c.d\nimport e.*\nimport f.g as h\nfun main() {}",
			[]NodeKind{KindPackageDirective, KindImportList, KindFunction}},
		{"file annotation", "@file:JvmName(\"X\")\npackage p",
			[]NodeKind{KindFileAnnotationList, KindPackageDirective}},
		{"class", "class A", []NodeKind{KindClass}},
		{"data class", "data class P(val x: Int, val y: Int)", []NodeKind{KindClass}},
		{"enum", "enum class Color { RED, GREEN; fun f() = 1 }", []NodeKind{KindClass}},
		{"interface", "interface I { fun f(): Int }", []NodeKind{KindClass}},
		{"members", "class A {\n  companion object {}\n  init {}\n  constructor(x: Int) : this()\n}", []NodeKind{KindClass}},
		{"delegation", "object O : I by impl", []NodeKind{KindObjectDeclaration}},
		{"typealias", "typealias S = String", []NodeKind{KindTypeAlias}},
		{"destructuring", "val (a, b) = pair", []NodeKind{KindMultiVariableDeclaration}},
		{"delegate", "val x by lazy { 1 }", []NodeKind{KindProperty}},
		{"extension", "fun <T> List<T>.second(): T = this[1]", []NodeKind{KindFunction}},
		{"two", "val a = 1; val b = 2", []NodeKind{KindProperty, KindProperty}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := parse(t, RuleFile, tt.input)
			require.Equal(t, KindFile, node.Kind)
			assert.Equal(t, tt.kinds, topLevelKinds(node), node.String())
		})
	}
}

func TestPropertyDeclaration(t *testing.T) {
	node := parse(t, RuleFile, "val x: Int = 1 + 2 * 3")
	want := `File
  Property
    Token val
    Token x
    Token :
    TypeReference
      UserType
        Token Int
    Token =
    BinaryExpression
      IntegerConstant
        Token 1
      OperationReference
        Token +
      BinaryExpression
        IntegerConstant
          Token 2
        OperationReference
          Token *
        IntegerConstant
          Token 3
`
	assert.Equal(t, want, node.String())
}

func TestFunctionDeclaration(t *testing.T) {
	node := parse(t, RuleFile, "fun f(a: Int): Int { return a }")
	want := `File
  Function
    Token fun
    Token f
    ValueParameterList
      Token (
      ValueParameter
        Token a
        Token :
        TypeReference
          UserType
            Token Int
      Token )
    Token :
    TypeReference
      UserType
        Token Int
    Block
      Token {
      Return
        Token return
        Reference
          Token a
      Token }
`
	assert.Equal(t, want, node.String())
}

func TestLeftAssociativity(t *testing.T) {
	node := parse(t, RuleExpression, "a - b - c")
	require.Equal(t, KindBinaryExpression, node.Kind)
	require.Len(t, node.Children, 3)
	left := node.Children[0]
	assert.Equal(t, KindBinaryExpression, left.Kind)
	assert.Equal(t, "a - b", left.Text())
	assert.Equal(t, KindReference, node.Children[2].Kind)
}

func TestRightAssociativeAssignment(t *testing.T) {
	node := parse(t, RuleExpression, "a = b = c")
	require.Equal(t, KindBinaryExpression, node.Kind)
	assert.Equal(t, KindReference, node.Children[0].Kind)
	assert.Equal(t, KindBinaryExpression, node.Children[2].Kind)
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		input string
		// operator of the root and text of its right operand
		op    string
		right string
	}{
		{"a || b && c", "||", "b && c"},
		{"a && b == c", "&&", "b == c"},
		{"a == b < c", "==", "b < c"},
		{"a < b in c", "<", "b in c"},
		{"a in b ?: c", "in", "b ?: c"},
		{"a ?: b .. c", "?:", "b .. c"},
		{"a .. b + c", "..", "b + c"},
		{"a + b * c", "+", "b * c"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node := parse(t, RuleExpression, tt.input)
			require.Len(t, node.Children, 3, node.String())
			assert.Equal(t, tt.op, node.Children[1].Text())
			assert.Equal(t, tt.right, node.Children[2].Text())
		})
	}
}

// "as" sits between multiplication and the prefix operators, so it binds
// to the right operand of '*' only.
func TestCastBindsTighterThanMultiplication(t *testing.T) {
	node := parse(t, RuleExpression, "a * b as T")
	require.Equal(t, KindBinaryExpression, node.Kind, node.String())
	assert.Equal(t, "a", node.Children[0].Text())
	assert.Equal(t, KindBinaryWithType, node.Children[2].Kind)
	assert.Equal(t, "b as T", node.Children[2].Text())

	node = parse(t, RuleExpression, "-a as T")
	require.Equal(t, KindBinaryWithType, node.Kind, node.String())
	assert.Equal(t, KindPrefixExpression, node.Children[0].Kind)
}

func TestNewlines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kinds []NodeKind
	}{
		{"operator on next line starts a statement", "a\n+ b", []NodeKind{KindReference, KindPrefixExpression}},
		{"dot continues", "a\n.b", []NodeKind{KindDotQualified}},
		{"safe access continues", "a\n?.b", []NodeKind{KindSafeAccess}},
		{"elvis continues", "a\n?: b", []NodeKind{KindBinaryExpression}},
		{"and continues", "a\n&& b", []NodeKind{KindBinaryExpression}},
		{"call on next line", "f\n(x)", []NodeKind{KindReference, KindParenthesized}},
		{"brackets ignore newlines", "(a\n+ b)", []NodeKind{KindParenthesized}},
		{"semicolons", "a; b", []NodeKind{KindReference, KindReference}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := parse(t, RuleScript, tt.input)
			assert.Equal(t, tt.kinds, topLevelKinds(node), node.String())
		})
	}
}

func TestSameLineStatementsNeedSeparator(t *testing.T) {
	_, err := Parse(RuleScript, lexer.Tokenize([]byte("a b"), "test.kt"), WithLogger(nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTrailingInput))
}

func TestGenericCallOrComparison(t *testing.T) {
	tests := []struct {
		input string
		kind  NodeKind
		text  string
	}{
		{"f<T>(x)", KindCallExpression, "f < T > ( x )"},
		{"f<Int, String>(x)", KindCallExpression, "f < Int , String > ( x )"},
		{"f<List<T>>()", KindCallExpression, "f < List < T > > ( )"},
		{"lazy<String> { s }", KindCallExpression, "lazy < String > { s }"},
		{"a < b > c", KindBinaryExpression, "a < b > c"},
		{"a < b", KindBinaryExpression, "a < b"},
		{"a < 1 > (c)", KindBinaryExpression, "a < 1 > ( c )"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node := parse(t, RuleExpression, tt.input)
			assert.Equal(t, tt.kind, node.Kind, node.String())
			assert.Equal(t, tt.text, node.Text())
			if tt.kind == KindCallExpression {
				assert.NotNil(t, node.FirstChildOfKind(KindTypeArgumentList))
			}
		})
	}

	// The comparison reading keeps '<' and '>' as operators.
	node := parse(t, RuleExpression, "a < b > c")
	require.Equal(t, KindBinaryExpression, node.Children[0].Kind)
	assert.Equal(t, "<", node.Children[0].Children[1].Text())
	assert.Equal(t, ">", node.Children[1].Text())

	node = parse(t, RuleExpression, "f<Int, String>(x)")
	args := node.FirstChildOfKind(KindTypeArgumentList)
	require.NotNil(t, args)
	projections := args.ChildrenOfKind(KindTypeProjection)
	require.Len(t, projections, 2)
	assert.Equal(t, "Int", projections[0].Text())
	assert.Equal(t, "String", projections[1].Text())

	// Without a call after '>' the same shape is two comparisons.
	node = parse(t, RuleExpression, "foo(a < b, c > d)")
	require.Equal(t, KindCallExpression, node.Kind, node.String())
	assert.Nil(t, node.FirstChildOfKind(KindTypeArgumentList))
	list := node.FirstChildOfKind(KindValueArgumentList)
	require.NotNil(t, list)
	values := list.ChildrenOfKind(KindValueArgument)
	require.Len(t, values, 2)
	for i, want := range []string{"a < b", "c > d"} {
		require.Len(t, values[i].Children, 1)
		assert.Equal(t, KindBinaryExpression, values[i].Children[0].Kind)
		assert.Equal(t, want, values[i].Text())
	}
}

func TestTryCatchFinally(t *testing.T) {
	tests := []struct {
		input   string
		catches int
		finally bool
	}{
		{"try { 1 } catch (e: E) { 2 } finally { }", 1, true},
		{"try { 1 } catch (e: A) { 2 } catch (e: B) { 3 }", 2, false},
		{"try { 1 } finally { 2 }", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node := parse(t, RuleExpression, tt.input)
			require.Equal(t, KindTry, node.Kind, node.String())
			catches := node.ChildrenOfKind(KindCatch)
			assert.Len(t, catches, tt.catches)
			for _, c := range catches {
				assert.Equal(t, "catch", c.Children[0].Text())
				assert.NotNil(t, c.FirstChildOfKind(KindValueParameterList))
				assert.NotNil(t, c.FirstChildOfKind(KindBlock))
			}
			assert.Equal(t, tt.finally, node.FirstChildOfKind(KindFinally) != nil)
		})
	}

	_, err := Parse(RuleExpression, lexer.Tokenize([]byte("try { 1 }"), "test.kt"), WithLogger(nil))
	assert.Error(t, err)
}

func TestShortAnnotations(t *testing.T) {
	node := parse(t, RuleFile, "Deprecated(\"x\") fun f() {}")
	fn := node.Children[0]
	require.Equal(t, KindFunction, fn.Kind, node.String())
	mods := fn.FirstChildOfKind(KindModifierList)
	require.NotNil(t, mods)
	assert.NotNil(t, mods.FirstChildOfKind(KindAnnotationEntry))

	node = parse(t, RuleFile, "class A {\n  Inject val x = 1\n}")
	body := node.Children[0].FirstChildOfKind(KindClassBody)
	require.NotNil(t, body)
	prop := body.FirstChildOfKind(KindProperty)
	require.NotNil(t, prop, node.String())
	assert.NotNil(t, prop.FirstChildOfKind(KindModifierList))

	// Local declarations need the '@'.
	_, err := Parse(RuleScript, lexer.Tokenize([]byte("Deprecated(\"x\") fun f() {}"), "test.kt"), WithLogger(nil))
	assert.Error(t, err)
	node = parse(t, RuleScript, "@Deprecated(\"x\") fun f() {}")
	assert.Equal(t, []NodeKind{KindFunction}, topLevelKinds(node))
}

// nestedCalls returns f({ f({ ... x ... }) }) nested depth times.
func nestedCalls(depth int) string {
	return strings.Repeat("f({ ", depth) + "x" + strings.Repeat(" })", depth)
}

func TestNestedCallArgumentsBacktrackLinearly(t *testing.T) {
	backtracks := func(depth int) int {
		p := ParseScript(strings.NewReader(nestedCalls(depth)), WithLogger(nil))
		require.NotNil(t, p.Finish(), "depth %d: %v", depth, p.Err())
		assert.Zero(t, p.Stats().GuardTrips)
		return p.Stats().Backtracks
	}

	shallow, deep := backtracks(8), backtracks(16)
	assert.LessOrEqual(t, deep, 3*shallow, "depth 8: %d backtracks, depth 16: %d", shallow, deep)
}

func TestComplexTokens(t *testing.T) {
	node := parse(t, RuleExpression, "!!x")
	require.Equal(t, KindPrefixExpression, node.Kind)
	assert.Equal(t, KindPrefixExpression, node.Children[1].Kind)

	node = parse(t, RuleExpression, "x!!")
	require.Equal(t, KindPostfixExpression, node.Kind)
	assert.Equal(t, "!!", node.Children[1].Text())

	// Separated by a space the pair is not joined, so there is no elvis.
	_, err := Parse(RuleExpression, lexer.Tokenize([]byte("a ? : b"), "test.kt"), WithLogger(nil))
	assert.True(t, errors.Is(err, ErrTrailingInput))
}

func TestReceiverTypes(t *testing.T) {
	node := parse(t, RuleFile, "fun String?.orEmpty(): String = this ?: \"\"")
	fn := node.Children[0]
	require.Equal(t, KindFunction, fn.Kind)
	receiver := fn.FirstChildOfKind(KindTypeReference)
	require.NotNil(t, receiver)
	assert.Equal(t, KindNullableType, receiver.Children[0].Kind)
	assert.Equal(t, "orEmpty", fn.FirstToken(lexer.TokenIdent).Literal)

	node = parse(t, RuleFile, "val Map<String, Int>.total get() = values.sum()")
	prop := node.Children[0]
	require.Equal(t, KindProperty, prop.Kind)
	assert.Equal(t, "Map < String , Int >", prop.FirstChildOfKind(KindTypeReference).Text())
	assert.Equal(t, "total", prop.FirstToken(lexer.TokenIdent).Literal)
	assert.NotNil(t, prop.FirstChildOfKind(KindPropertyAccessor))
}

func TestPropertyAccessors(t *testing.T) {
	src := "var x: Int = 0\n    get() = field\n    private set"
	node := parse(t, RuleFile, src)
	prop := node.Children[0]
	require.Equal(t, KindProperty, prop.Kind)
	accessors := prop.ChildrenOfKind(KindPropertyAccessor)
	require.Len(t, accessors, 2)
	assert.Equal(t, "get ( ) = field", accessors[0].Text())
	assert.Equal(t, "private set", accessors[1].Text())
}

func TestTypeParameters(t *testing.T) {
	node := parse(t, RuleFile, "inline fun <reified T : Any, out R> f() {}")
	fn := node.Children[0]
	params := fn.FirstChildOfKind(KindTypeParameterList)
	require.NotNil(t, params)
	list := params.ChildrenOfKind(KindTypeParameter)
	require.Len(t, list, 2)
	assert.Equal(t, "reified T : Any", list[0].Text())
	assert.NotNil(t, list[0].FirstChildOfKind(KindModifierList))
	assert.Equal(t, "out R", list[1].Text())
}

func TestClassHeaderKeepsBody(t *testing.T) {
	node := parse(t, RuleFile, "class A : B() {\n  fun f() {}\n}")
	class := node.Children[0]
	supers := class.FirstChildOfKind(KindSuperTypeList)
	require.NotNil(t, supers)
	assert.Equal(t, KindSuperTypeCallEntry, supers.Children[0].Kind)
	body := class.FirstChildOfKind(KindClassBody)
	require.NotNil(t, body)
	assert.NotNil(t, body.FirstChildOfKind(KindFunction))
}

func TestLambdaShapes(t *testing.T) {
	tests := []struct {
		input  string
		params string
	}{
		{"{ it }", ""},
		{"{ -> 1 }", ""},
		{"{ a, b -> a }", "a , b"},
		{"{ (a, b) -> a }", "( a , b )"},
		{"{ a: Int -> a }", "a : Int"},
		{"{ String.(x: Int): Int -> x }", "( x : Int )"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node := parse(t, RuleExpression, tt.input)
			require.Equal(t, KindLambdaExpression, node.Kind)
			params := node.FirstChildOfKind(KindValueParameterList)
			if tt.params == "" {
				assert.Nil(t, params)
			} else {
				require.NotNil(t, params, node.String())
				assert.Equal(t, tt.params, params.Text())
			}
			assert.NotNil(t, node.FirstChildOfKind(KindBlock))
		})
	}
}

func TestStringTemplate(t *testing.T) {
	node := parse(t, RuleExpression, `"a\n$b${c + 1}"`)
	require.Equal(t, KindStringTemplate, node.Kind)
	var kinds []NodeKind
	for _, child := range node.Children {
		kinds = append(kinds, child.Kind)
	}
	assert.Equal(t, []NodeKind{
		KindToken,
		KindLiteralStringEntry,
		KindEscapeStringEntry,
		KindShortStringEntry,
		KindLongStringEntry,
		KindToken,
	}, kinds)
	assert.Equal(t, KindBinaryExpression, node.Children[4].Children[1].Kind)
}

func TestEveryTokenCommittedOnce(t *testing.T) {
	sources := []string{
		"val x: Int = 1 + 2 * 3",
		"fun f(a: Int): Int { return a }",
		"class A<T>(val t: T) : B<T>(), C by c where T : Any {\n  val y get() = t?.hashCode() ?: 0\n}",
		"fun main() {\n  listOf(1, 2).map { it * 2 }.filter { x -> x > 1 }!!\n}",
		"val s = \"$a and ${b.c}\"",
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			tokens := lexer.Tokenize([]byte(src), "test.kt")
			node := parse(t, RuleFile, src)

			var want, got strings.Builder
			for _, tok := range tokens {
				want.WriteString(tok.Literal)
			}
			for _, tok := range node.Tokens() {
				got.WriteString(tok.Literal)
			}
			assert.Equal(t, want.String(), got.String())
		})
	}
}

func TestParseIsRepeatable(t *testing.T) {
	src := "fun <T> List<T>.second(): T = this[1]\nval x = a?.b ?: c!!"
	tokens := lexer.Tokenize([]byte(src), "test.kt")
	first, err := Parse(RuleFile, tokens, WithLogger(nil))
	require.NoError(t, err)
	second, err := Parse(RuleFile, tokens, WithLogger(nil))
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second parse differs (-first +second):\n%s", diff)
	}
}

func TestParseDoesNotModifyTokens(t *testing.T) {
	tokens := lexer.Tokenize([]byte("a + b"), "test.kt")
	tokens = tokens[:len(tokens)-1]
	before := append([]lexer.Token(nil), tokens...)
	node, err := Parse(RuleExpression, tokens, WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, KindBinaryExpression, node.Kind)
	assert.Equal(t, before, tokens)
}

func TestParseErrors(t *testing.T) {
	t.Run("no parse", func(t *testing.T) {
		_, err := Parse(RuleExpression, lexer.Tokenize([]byte(")"), "test.kt"), WithLogger(nil))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNoParse))
		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, RuleExpression, perr.Rule)
		assert.Equal(t, ")", perr.Found.Literal)
		assert.Contains(t, perr.Expected, "expression")
	})

	t.Run("trailing input", func(t *testing.T) {
		_, err := Parse(RuleFile, lexer.Tokenize([]byte("val = 1"), "test.kt"), WithLogger(nil))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTrailingInput))
		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "=", perr.Found.Literal)
		assert.Equal(t, 1, perr.Pos.Line)
		assert.Equal(t, 5, perr.Pos.Column)
		assert.Contains(t, perr.Expected, "Ident")
		assert.Contains(t, err.Error(), "test.kt:1:5")
	})

	t.Run("end of input", func(t *testing.T) {
		p := ParseExpression(strings.NewReader("1 +"), WithLogger(nil))
		assert.Nil(t, p.Finish())
		require.Error(t, p.Err())
		var perr *ParseError
		require.True(t, errors.As(p.Err(), &perr))
		assert.Equal(t, lexer.TokenEOF, perr.Found.Kind)
		assert.Contains(t, p.Err().Error(), "end of input")
	})

	t.Run("unknown rule", func(t *testing.T) {
		_, err := Parse(Rule(-1), nil)
		assert.Error(t, err)
	})
}

func TestMaxDepth(t *testing.T) {
	p := ParseExpression(strings.NewReader("1"), WithMaxDepth(5), WithLogger(nil))
	assert.Nil(t, p.Finish())
	assert.True(t, errors.Is(p.Err(), ErrNoParse))
	assert.Positive(t, p.Stats().GuardTrips)

	p = ParseExpression(strings.NewReader("((((1))))"), WithLogger(nil))
	require.NotNil(t, p.Finish())
	assert.Zero(t, p.Stats().GuardTrips)
}

func TestEntryRules(t *testing.T) {
	tests := []struct {
		rule  Rule
		input string
		kind  NodeKind
	}{
		{RuleType, "Map<String, List<Int>>?", KindTypeReference},
		{RuleType, "suspend String.(Int) -> Unit", KindTypeReference},
		{RuleTypeArgumentList, "<in T, *>", KindTypeArgumentList},
		{RuleBlock, "{ a; b }", KindBlock},
		{RuleValueArgumentList, "(1, x = 2)", KindValueArgumentList},
		{RuleDeclaration, "private val x = 1", KindProperty},
		{RuleImportDirective, "import a.b.c", KindImportDirective},
		{RuleAnnotation, "@Suppress(\"x\")", KindAnnotationEntry},
		{RuleAnnotation, "@[A B]", KindAnnotation},
	}

	for _, tt := range tests {
		t.Run(tt.rule.String()+" "+tt.input, func(t *testing.T) {
			node := parse(t, tt.rule, tt.input)
			assert.Equal(t, tt.kind, node.Kind, node.String())
		})
	}
}

func TestLookupRule(t *testing.T) {
	r, ok := LookupRule("Expression")
	require.True(t, ok)
	assert.Equal(t, RuleExpression, r)

	_, ok = LookupRule("nope")
	assert.False(t, ok)

	assert.Len(t, Rules(), int(ruleCount))
	for _, r := range Rules() {
		assert.NotEqual(t, "Unknown", r.String())
	}
}
