package capabilities

var codeTemplates = map[string]map[string]string{
	"javascript": {
		"function": `// JavaScript Function Example
function processData(input) {
  // Process the input data
  const result = input.map(item => item * 2);
  return result;
}

// Usage
const data = [1, 2, 3, 4, 5];
const processed = processData(data);
console.log(processed); // [2, 4, 6, 8, 10]`,

		"class": `// JavaScript Class Example
class DataProcessor {
  constructor(name) {
    this.name = name;
    this.data = [];
  }

  addData(item) {
    this.data.push(item);
  }

  process() {
    return this.data.map(item => item * 2);
  }
}

// Usage
const processor = new DataProcessor('MyProcessor');
processor.addData(5);
console.log(processor.process());`,
	},

	"react": {
		"component": `// React Component Example
import React, { useState } from 'react';

const MyComponent = () => {
  const [count, setCount] = useState(0);

  const handleClick = () => {
    setCount(count + 1);
  };

  return (
    <div className="component">
      <h2>Count: {count}</h2>
      <button onClick={handleClick}>
        Increment
      </button>
    </div>
  );
};

export default MyComponent;`,
	},

	"python": {
		"function": `# Python Function Example
def process_data(input_list):
    """Process input data and return modified version"""
    result = [item * 2 for item in input_list]
    return result

# Usage
data = [1, 2, 3, 4, 5]
processed = process_data(data)
print(processed)  # [2, 4, 6, 8, 10]`,
	},
}
