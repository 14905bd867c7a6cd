package ast

// Deep copies for members stored in the default registry. Records must not
// alias the blocks they were extracted from, and each application splices an
// independent copy so later passes cannot mutate the record.

func (fm *FunctionMember) CloneMember() Member {
	if fm == nil {
		return nil
	}
	c := &FunctionMember{
		Token:      fm.Token,
		Name:       cloneIdentifier(fm.Name),
		ReturnType: cloneType(fm.ReturnType),
		Body:       cloneBlock(fm.Body),
	}
	for _, p := range fm.Parameters {
		c.Parameters = append(c.Parameters, &Parameter{
			Token: p.Token,
			Name:  cloneIdentifier(p.Name),
			Type:  cloneType(p.Type),
		})
	}
	return c
}

func (cm *ConstantMember) CloneMember() Member {
	if cm == nil {
		return nil
	}
	return &ConstantMember{
		Token:          cm.Token,
		Name:           cloneIdentifier(cm.Name),
		TypeAnnotation: cloneType(cm.TypeAnnotation),
		Value:          cloneExpression(cm.Value),
	}
}

func (tm *TypeMember) CloneMember() Member {
	if tm == nil {
		return nil
	}
	return &TypeMember{
		Token: tm.Token,
		Name:  cloneIdentifier(tm.Name),
		Value: cloneType(tm.Value),
	}
}

func cloneIdentifier(id *Identifier) *Identifier {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func cloneType(t Type) Type {
	nt, ok := t.(*NamedType)
	if !ok || nt == nil {
		return nil
	}
	c := &NamedType{Token: nt.Token, Name: cloneIdentifier(nt.Name)}
	for _, arg := range nt.Args {
		c.Args = append(c.Args, cloneType(arg))
	}
	return c
}

func cloneBlock(b *BlockStatement) *BlockStatement {
	if b == nil {
		return nil
	}
	c := &BlockStatement{Token: b.Token}
	for _, stmt := range b.Statements {
		c.Statements = append(c.Statements, cloneStatement(stmt))
	}
	return c
}

func cloneStatement(s Statement) Statement {
	switch n := s.(type) {
	case *ExpressionStatement:
		return &ExpressionStatement{Token: n.Token, Expression: cloneExpression(n.Expression)}
	case *ConstantDeclaration:
		return &ConstantDeclaration{
			Token:          n.Token,
			Name:           cloneIdentifier(n.Name),
			TypeAnnotation: cloneType(n.TypeAnnotation),
			Value:          cloneExpression(n.Value),
		}
	case *BlockStatement:
		return cloneBlock(n)
	default:
		return s
	}
}

func cloneExpression(e Expression) Expression {
	switch n := e.(type) {
	case nil:
		return nil
	case *Identifier:
		return cloneIdentifier(n)
	case *IntegerLiteral:
		c := *n
		return &c
	case *FloatLiteral:
		c := *n
		return &c
	case *StringLiteral:
		c := *n
		return &c
	case *BooleanLiteral:
		c := *n
		return &c
	case *NilLiteral:
		c := *n
		return &c
	case *ListLiteral:
		c := &ListLiteral{Token: n.Token}
		for _, el := range n.Elements {
			c.Elements = append(c.Elements, cloneExpression(el))
		}
		return c
	case *PrefixExpression:
		return &PrefixExpression{Token: n.Token, Operator: n.Operator, Right: cloneExpression(n.Right)}
	case *InfixExpression:
		return &InfixExpression{
			Token:    n.Token,
			Left:     cloneExpression(n.Left),
			Operator: n.Operator,
			Right:    cloneExpression(n.Right),
		}
	case *CallExpression:
		c := &CallExpression{Token: n.Token, Function: cloneExpression(n.Function)}
		for _, arg := range n.Arguments {
			c.Arguments = append(c.Arguments, cloneExpression(arg))
		}
		return c
	default:
		return e
	}
}
