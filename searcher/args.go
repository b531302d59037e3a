package searcher

// Hyperparameters for MCTS

const DefaultSimulations = 1000

const DefaultExploration = 2.0 // C in the UCB1 exploration term

// Rewards credited to a node's win count
const Win = 1.0
const Loss = 0.0
