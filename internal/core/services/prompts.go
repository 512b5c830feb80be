package services

// ragSystemPrompt instructs the model to answer only from retrieved
// passages and to cite them by their context labels.
const ragSystemPrompt = `You are a helpful assistant that answers questions based only on the provided context from PDF documents.
If the context does not contain enough information to answer the question, say so.
You may cite sources using the labels [1], [2], etc. that appear next to each context block.`

// ragUserTemplate renders the retrieved context and the question into the
// user turn. Arguments: context, question.
const ragUserTemplate = `Context:
%s

Question: %s`
