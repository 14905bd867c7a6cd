package ast

// Visitor dispatches over every concrete node type.
type Visitor interface {
	VisitProgram(n *Program)
	VisitIdentifier(n *Identifier)
	VisitIntegerLiteral(n *IntegerLiteral)
	VisitFloatLiteral(n *FloatLiteral)
	VisitStringLiteral(n *StringLiteral)
	VisitBooleanLiteral(n *BooleanLiteral)
	VisitNilLiteral(n *NilLiteral)
	VisitListLiteral(n *ListLiteral)
	VisitPrefixExpression(n *PrefixExpression)
	VisitInfixExpression(n *InfixExpression)
	VisitCallExpression(n *CallExpression)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitConstantDeclaration(n *ConstantDeclaration)
	VisitBlockStatement(n *BlockStatement)
	VisitNamedType(n *NamedType)
	VisitImplBlock(n *ImplBlock)
	VisitFunctionMember(n *FunctionMember)
	VisitConstantMember(n *ConstantMember)
	VisitTypeMember(n *TypeMember)
}
