package grammar

// Production is a single grammar rule: LHS derives the concatenation of
// RHS. An RHS of exactly []SymbolID{Epsilon} derives the empty string.
type Production struct {
	LHS SymbolID
	RHS []SymbolID
}

// Productions is the fixed production set, in the reference numbering:
// Productions[i] is production number i+1.
var Productions = []Production{
	{NProgram, []SymbolID{NOtherFunctions, NMainFunction}},                                      // 1
	{NMainFunction, []SymbolID{SMain, NStmts, SEnd}},                                             // 2
	{NOtherFunctions, []SymbolID{NFunction, NOtherFunctions}},                                    // 3
	{NOtherFunctions, []SymbolID{Epsilon}},                                                       // 4
	{NFunction, []SymbolID{SFunid, NInputPar, NOutputPar, SSem, NStmts, SEnd}},                   // 5
	{NInputPar, []SymbolID{SInput, SParameter, SList, SSqL, NParameterList, SSqR}},                // 6
	{NOutputPar, []SymbolID{SOutput, SParameter, SList, SSqL, NParameterList, SSqR}},              // 7
	{NOutputPar, []SymbolID{Epsilon}},                                                            // 8
	{NParameterList, []SymbolID{NDataType, SID, NRemainingList}},                                 // 9
	{NDataType, []SymbolID{NPrimitiveDataType}},                                                  // 10
	{NDataType, []SymbolID{NConstructedDataType}},                                                // 11
	{NPrimitiveDataType, []SymbolID{SInt}},                                                       // 12
	{NPrimitiveDataType, []SymbolID{SReal}},                                                      // 13
	{NConstructedDataType, []SymbolID{NA, SRuid}},                                                // 14
	{NConstructedDataType, []SymbolID{SRuid}},                                                    // 15
	{NRemainingList, []SymbolID{SComma, NParameterList}},                                         // 16
	{NRemainingList, []SymbolID{Epsilon}},                                                        // 17
	{NStmts, []SymbolID{NTypeDefinitions, NDeclarations, NOtherStmts, NReturnStmt}},               // 18
	{NTypeDefinitions, []SymbolID{NActualOrRedefined, NTypeDefinitions}},                          // 19
	{NTypeDefinitions, []SymbolID{Epsilon}},                                                       // 20
	{NActualOrRedefined, []SymbolID{NTypeDefinition}},                                             // 21
	{NActualOrRedefined, []SymbolID{NDefinetypestmt}},                                             // 22
	{NTypeDefinition, []SymbolID{SRecord, SRuid, NFieldDefinitions, SEndrecord}},                  // 23
	{NTypeDefinition, []SymbolID{SUnion, SRuid, NFieldDefinitions, SEndunion}},                    // 24
	{NFieldDefinitions, []SymbolID{NFieldDefinition, NFieldDefinition, NMoreFields}},               // 25
	{NFieldDefinition, []SymbolID{SType, NFieldType, SColon, SFieldid, SSem}},                     // 26
	{NFieldType, []SymbolID{NPrimitiveDataType}},                                                  // 27
	{NFieldType, []SymbolID{NConstructedDataType}},                                                // 28
	{NMoreFields, []SymbolID{NFieldDefinition, NMoreFields}},                                      // 29
	{NMoreFields, []SymbolID{Epsilon}},                                                            // 30
	{NDeclarations, []SymbolID{NDeclaration, NDeclarations}},                                      // 31
	{NDeclarations, []SymbolID{Epsilon}},                                                          // 32
	{NDeclaration, []SymbolID{SType, NDataType, SColon, SID, NGlobalOrNot, SSem}},                 // 33
	{NGlobalOrNot, []SymbolID{SColon, SGlobal}},                                                   // 34
	{NGlobalOrNot, []SymbolID{Epsilon}},                                                           // 35
	{NOtherStmts, []SymbolID{NStmt, NOtherStmts}},                                                 // 36
	{NOtherStmts, []SymbolID{Epsilon}},                                                            // 37
	{NStmt, []SymbolID{NAssignmentStmt}},                                                          // 38
	{NStmt, []SymbolID{NIterativeStmt}},                                                           // 39
	{NStmt, []SymbolID{NConditionalStmt}},                                                         // 40
	{NStmt, []SymbolID{NIoStmt}},                                                                  // 41
	{NStmt, []SymbolID{NFunCallStmt}},                                                             // 42
	{NAssignmentStmt, []SymbolID{NSingleOrRecId, SAssignop, NArithmeticExpression, SSem}},          // 43
	{NSingleOrRecId, []SymbolID{SID, NOptionSingleConstructed}},                                   // 44
	{NOptionSingleConstructed, []SymbolID{NOneExpansion, NMoreExpansions}},                        // 45
	{NOptionSingleConstructed, []SymbolID{Epsilon}},                                               // 46
	{NMoreExpansions, []SymbolID{NOneExpansion, NMoreExpansions}},                                 // 47
	{NMoreExpansions, []SymbolID{Epsilon}},                                                        // 48
	{NOneExpansion, []SymbolID{SDot, SFieldid}},                                                   // 49
	{NFunCallStmt, []SymbolID{NOutputParameters, SCall, SFunid, SWith, SParameters, NInputParameters, SSem}}, // 50
	{NOutputParameters, []SymbolID{SSqL, NIdList, SSqR, SAssignop}},                               // 51
	{NOutputParameters, []SymbolID{Epsilon}},                                                      // 52
	{NInputParameters, []SymbolID{SSqL, NIdList, SSqR}},                                           // 53
	{NIterativeStmt, []SymbolID{SWhile, SOp, NBooleanExpression, SCl, NStmt, NOtherStmts, SEndwhile}}, // 54
	{NConditionalStmt, []SymbolID{SIf, SOp, NBooleanExpression, SCl, SThen, NStmt, NOtherStmts, NElsePart}}, // 55
	{NElsePart, []SymbolID{SElse, NStmt, NOtherStmts, SEndif}},                                    // 56
	{NElsePart, []SymbolID{SEndif}},                                                               // 57
	{NIoStmt, []SymbolID{SRead, SOp, NVar, SCl, SSem}},                                             // 58
	{NIoStmt, []SymbolID{SWrite, SOp, NVar, SCl, SSem}},                                            // 59
	{NArithmeticExpression, []SymbolID{NTerm, NExpPrime}},                                         // 60
	{NExpPrime, []SymbolID{NLowPrecedenceOp, NTerm, NExpPrime}},                                   // 61
	{NExpPrime, []SymbolID{Epsilon}},                                                               // 62
	{NTerm, []SymbolID{NFactor, NTermPrime}},                                                       // 63
	{NTermPrime, []SymbolID{NHighPrecedenceOp, NFactor, NTermPrime}},                               // 64
	{NTermPrime, []SymbolID{Epsilon}},                                                              // 65
	{NFactor, []SymbolID{SOp, NArithmeticExpression, SCl}},                                         // 66
	{NFactor, []SymbolID{NVar}},                                                                    // 67
	{NLowPrecedenceOp, []SymbolID{SPlus}},                                                          // 68
	{NLowPrecedenceOp, []SymbolID{SMinus}},                                                         // 69
	{NHighPrecedenceOp, []SymbolID{SMul}},                                                          // 70
	{NHighPrecedenceOp, []SymbolID{SDiv}},                                                          // 71
	{NBooleanExpression, []SymbolID{SOp, NBooleanExpression, SCl, NLogicalOp, SOp, NBooleanExpression, SCl}}, // 72
	{NBooleanExpression, []SymbolID{NVar, NRelationalOp, NVar}},                                    // 73
	{NBooleanExpression, []SymbolID{SNot, SOp, NBooleanExpression, SCl}},                           // 74
	{NVar, []SymbolID{NSingleOrRecId}},                                                             // 75
	{NVar, []SymbolID{SNum}},                                                                       // 76
	{NVar, []SymbolID{SRnum}},                                                                      // 77
	{NLogicalOp, []SymbolID{SAnd}},                                                                 // 78
	{NLogicalOp, []SymbolID{SOr}},                                                                  // 79
	{NRelationalOp, []SymbolID{SLt}},                                                               // 80
	{NRelationalOp, []SymbolID{SLe}},                                                               // 81
	{NRelationalOp, []SymbolID{SEq}},                                                               // 82
	{NRelationalOp, []SymbolID{SGt}},                                                               // 83
	{NRelationalOp, []SymbolID{SGe}},                                                               // 84
	{NRelationalOp, []SymbolID{SNe}},                                                               // 85
	{NReturnStmt, []SymbolID{SReturn, NOptionalReturn, SSem}},                                      // 86
	{NOptionalReturn, []SymbolID{SSqL, NIdList, SSqR}},                                             // 87
	{NOptionalReturn, []SymbolID{Epsilon}},                                                         // 88
	{NIdList, []SymbolID{SID, NMoreIds}},                                                           // 89
	{NMoreIds, []SymbolID{SComma, NIdList}},                                                        // 90
	{NMoreIds, []SymbolID{Epsilon}},                                                                // 91
	{NDefinetypestmt, []SymbolID{SDefinetype, NA, SRuid, SAs, SRuid}},                               // 92
	{NA, []SymbolID{SRecord}},                                                                       // 93
	{NA, []SymbolID{SUnion}},                                                                        // 94
}
